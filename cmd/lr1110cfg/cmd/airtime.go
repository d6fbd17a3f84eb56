package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var payloadLength int

var airtimeCmd = &cobra.Command{
	Use:   "airtime",
	Short: "Print the time on air of a packet sent with the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if payloadLength < 0 || payloadLength > 255 {
			return errors.Errorf("payload length %d outside [0, 255]", payloadLength)
		}
		p, err := loadProfile()
		if err != nil {
			return err
		}
		toa, err := p.TimeOnAir(payloadLength)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), toa)
		return nil
	},
}

func init() {
	airtimeCmd.Flags().IntVarP(&payloadLength, "payload", "n", 10, "payload length in bytes")
}
