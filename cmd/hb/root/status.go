package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/engine"
	"habitbuilder/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress: level, points, streak, milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			st := svc.State()

			nextLevelAt := st.CurrentLevel * engine.PointsPerLevel
			toNext := nextLevelAt - st.TotalPoints
			if toNext < 0 {
				toNext = 0
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("Habit Builder — Day %d", svc.DayNumber())))
			fmt.Fprintln(out, ui.LabelValue("Level", st.CurrentLevel))
			fmt.Fprintln(out, ui.LabelValue("Total points", fmt.Sprintf("%d (next level at %d, %d to go)", st.TotalPoints, nextLevelAt, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.Streak(st.Streak)))
			fmt.Fprintln(out, ui.LabelValue("Started", st.StartDate))
			if st.LastLogDate != "" {
				fmt.Fprintln(out, ui.LabelValue("Last logged", st.LastLogDate))
			}
			today := svc.Today()
			if st.HasLog(today) {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Today is logged."))
			} else {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconBell+" Today is not logged yet."))
			}

			if len(st.Milestones) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Milestones"))
				for _, m := range st.Milestones {
					fmt.Fprintf(out, "- %d points\n", m)
				}
			}
			return nil
		},
	}

	return cmd
}
