package root

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"habitbuilder/internal/store"
	"habitbuilder/internal/ui"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export progress to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			path := filepath.Join(svc.Store().Dir(), store.ExportFileName)
			if len(args) == 1 {
				path = args[0]
			}
			if err := svc.Store().ExportTo(svc.State(), path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Exported to "+path))
			return nil
		},
	}

	return cmd
}
