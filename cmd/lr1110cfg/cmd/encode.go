package cmd

import (
	"encoding/hex"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/semtrx/lora/lr1110"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the command frames that configure the radio for the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		frames, err := p.Commands()
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"profile": p.Name,
			"frames":  len(frames),
		}).Debug("profile encoded")
		return writeFrames(cmd.OutOrStdout(), frames)
	},
}

// writeFrames writes one hex encoded frame per line followed by its command
// name.
func writeFrames(w io.Writer, frames [][]byte) error {
	for _, f := range frames {
		op, _ := lr1110.OpcodeOf(f)
		if _, err := fmt.Fprintf(w, "%-26s # %s\n", hex.EncodeToString(f), op); err != nil {
			return err
		}
	}
	return nil
}
