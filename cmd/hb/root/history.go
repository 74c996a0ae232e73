package root

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"habitbuilder/internal/store"
	"habitbuilder/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var search string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past day logs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			st := svc.State()

			dates := make([]string, 0, len(st.DayLogs))
			for d := range st.DayLogs {
				dates = append(dates, d)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(dates)))

			needle := strings.ToLower(search)
			out := cmd.OutOrStdout()
			shown := 0
			for _, d := range dates {
				log := st.DayLogs[d]
				if needle != "" && !matchesJournal(log, needle) {
					continue
				}
				if limit > 0 && shown >= limit {
					break
				}
				shown++

				fmt.Fprintf(out, "%s %s  %s  %s\n",
					ui.IconCalendar,
					ui.Key.Render(d),
					ui.Muted.Render(fmt.Sprintf("day %d", log.DayNumber)),
					fmt.Sprintf("%d%% · %+d pts · energy %d", int(log.Completion), log.Points, log.Energy.Rating()),
				)
				for _, name := range sortedHabitNames(log.Habits) {
					fmt.Fprintf(out, "  %s %s\n", ui.CheckMark(log.Habits[name]), name)
				}
				if log.Journal.FreeText != "" {
					fmt.Fprintf(out, "  %s %s\n", ui.IconJournal, ui.Muted.Render(log.Journal.FreeText))
				}
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no matching day logs)"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by journal text (case-insensitive)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n days (0 = all)")
	return cmd
}

// matchesJournal reports whether any journal text on the log contains
// the lowercased needle.
func matchesJournal(log *store.DayLog, needle string) bool {
	if strings.Contains(strings.ToLower(log.Journal.FreeText), needle) {
		return true
	}
	for _, a := range log.Journal.Answers {
		if strings.Contains(strings.ToLower(a.Text), needle) {
			return true
		}
	}
	return false
}

func sortedHabitNames(habits map[string]bool) []string {
	names := make([]string, 0, len(habits))
	for name := range habits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
