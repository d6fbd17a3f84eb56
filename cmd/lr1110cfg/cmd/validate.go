package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the profile can be applied to the radio",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile()
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"profile":     p.Name,
			"packet_type": p.PacketType,
			"frequency":   p.Frequency,
		}).Info("profile is valid")
		return nil
	},
}
