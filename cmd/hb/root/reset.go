package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Back up progress and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset wipes all progress; pass --yes to confirm")
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			backup, err := svc.Reset()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render("Progress reset."))
			fmt.Fprintln(out, ui.Muted.Render("Backup saved to "+backup))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the reset")
	return cmd
}
