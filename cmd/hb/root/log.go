package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/engine"
	"habitbuilder/internal/ui"
)

func newLogCmd() *cobra.Command {
	var done []string
	var energy int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Submit today's habit log",
		Long:  "Submit today's log: habits named with --done count as completed,\nevery other configured habit counts as missed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			completed := map[string]bool{}
			for _, h := range svc.State().Habits {
				completed[h.Name] = false
			}
			for _, name := range done {
				if _, ok := svc.State().Habit(name); !ok {
					return fmt.Errorf("unknown habit %q", name)
				}
				completed[name] = true
			}

			res, err := svc.SubmitLog(engine.SubmitInput{Completed: completed, Energy: energy})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, fmt.Sprintf("Day %d logged — %s", res.DayNumber, res.Date)))
			fmt.Fprintln(out, ui.LabelValue("Completion", fmt.Sprintf("%d%%", res.Completion)))
			fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%+d", res.Points)))
			if res.StreakBonus > 0 {
				fmt.Fprintln(out, ui.LabelValue("Streak bonus", ui.Gold.Render(fmt.Sprintf("+%d", res.StreakBonus))))
			}
			fmt.Fprintln(out, ui.LabelValue("Streak", ui.Streak(res.Streak)))
			for _, ev := range res.Events {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" "+ev.String()))
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" "+res.Message))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&done, "done", "d", nil, "habit completed today (repeatable)")
	cmd.Flags().IntVarP(&energy, "energy", "e", 0, "energy rating 1-10 (default 5)")
	return cmd
}
