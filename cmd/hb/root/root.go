package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"habitbuilder/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hb",
	Short:         "Habit Builder — daily habit tracking with points and streaks",
	Long:          "Habit Builder is a local-first habit tracker: log your day, earn points,\nkeep a streak alive, and journal as you go.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "progress file (default: user config dir)")

	rootCmd.AddCommand(
		newLogCmd(),
		newStatusCmd(),
		newHabitsCmd(),
		newJournalCmd(),
		newHistoryCmd(),
		newRemindCmd(),
		newAudioCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
