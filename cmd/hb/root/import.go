package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Replace progress with an exported JSON file",
		Long:  "Replace progress with an exported JSON file. The import runs through\nthe same schema migration as normal loading, so older exports work.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			st, err := svc.Store().ImportFrom(args[0])
			if err != nil {
				return err
			}
			if err := svc.Adopt(st); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Imported "+args[0]))
			return nil
		},
	}

	return cmd
}
