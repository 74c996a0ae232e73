package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/audio"
	"habitbuilder/internal/engine"
	"habitbuilder/internal/ui"
)

func newAudioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audio",
		Short: "Pick motivational clips and manage categories",
	}

	cmd.AddCommand(
		newAudioNextCmd(),
		newAudioCategoriesCmd(),
	)
	return cmd
}

func newLibrary(svc *engine.Service) *audio.Library {
	return audio.NewLibrary(svc.Store().Dir())
}

func newAudioNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Pick today's clip and record it on today's log",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			lib := newLibrary(svc)
			sel := audio.NewSelector(svc.State(), lib, svc.Rand())

			pick, err := sel.Next(svc.Today())
			if err != nil {
				return err
			}
			// A pick only sticks if today is logged; otherwise it is
			// informational and the rotation history is persisted alone.
			if svc.State().HasLog(svc.Today()) {
				if err := svc.AttachAudio(pick.Ref()); err != nil {
					return err
				}
			} else if err := svc.Save(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconAudio, "Today's clip"))
			fmt.Fprintln(out, ui.LabelValue("Category", pick.Category))
			fmt.Fprintln(out, ui.LabelValue("File", pick.File))
			fmt.Fprintln(out, ui.Muted.Render(lib.CategoryDir(pick.Category)))
			return nil
		},
	}
}

func newAudioCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage audio categories",
	}

	cmd.AddCommand(
		newCategoriesListCmd(),
		newCategoriesAddCmd(),
		newCategoriesRenameCmd(),
		newCategoriesRemoveCmd(),
	)
	return cmd
}

func newCategoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their clip counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			lib := newLibrary(svc)
			if err := lib.EnsureCategories(svc.State().AudioPlayback.Categories); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconAudio, "Audio categories"))
			for _, c := range svc.State().AudioPlayback.Categories {
				files, err := lib.Files(c)
				if err != nil {
					return err
				}
				heard := len(svc.State().AudioPlayback.FileHistory[c])
				fmt.Fprintf(out, "- %s %s\n", c, ui.Muted.Render(fmt.Sprintf("(%d clips, %d heard)", len(files), heard)))
			}
			fmt.Fprintln(out, ui.Muted.Render("Drop .mp3/.wav/.ogg files under "+lib.Base()))
			return nil
		},
	}
}

func newCategoriesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := audio.AddCategory(svc.State(), args[0]); err != nil {
				return err
			}
			if err := newLibrary(svc).EnsureCategories([]string{args[0]}); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Added category %q.", args[0])))
			return nil
		},
	}
}

func newCategoriesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Rename a category, keeping its rotation history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := audio.RenameCategory(svc.State(), args[0], args[1]); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Renamed %q to %q. Move the clip folder yourself.", args[0], args[1])))
			return nil
		},
	}
}

func newCategoriesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category (clip files stay on disk)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := audio.RemoveCategory(svc.State(), args[0]); err != nil {
				return err
			}
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Removed category %q.", args[0])))
			return nil
		},
	}
}
