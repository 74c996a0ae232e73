package root

import (
	"github.com/spf13/cobra"

	"habitbuilder/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive logging board",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			return tui.RunBoard(svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
