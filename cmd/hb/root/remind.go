package root

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"habitbuilder/internal/engine"
	"habitbuilder/internal/reminder"
	"habitbuilder/internal/ui"
)

func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Configure and run the daily reminder",
	}

	cmd.AddCommand(
		newRemindNextCmd(),
		newRemindFireCmd(),
		newRemindSnoozeCmd(),
		newRemindOnCmd(),
		newRemindOffCmd(),
		newRemindTimeCmd(),
		newRemindHistoryCmd(),
		newRemindWatchCmd(),
	)
	return cmd
}

func newScheduler(svc *engine.Service) *reminder.Scheduler {
	return reminder.NewScheduler(svc.Store(), svc.State())
}

func newRemindNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show when the reminder would fire next",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			rs := svc.State().Reminders
			out := cmd.OutOrStdout()
			if !rs.Enabled {
				fmt.Fprintln(out, ui.Muted.Render("Reminders are off."))
				return nil
			}
			next := newScheduler(svc).Next(svc.Now())
			fmt.Fprintln(out, ui.LabelValue("Next reminder", next.Format("2006-01-02 15:04")))
			if snooze := rs.SnoozeUntil; snooze > svc.Now().Unix() {
				fmt.Fprintln(out, ui.LabelValue("Snoozed until", time.Unix(snooze, 0).Format("15:04")))
			}
			return nil
		},
	}
}

func newRemindFireCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fire",
		Short: "Evaluate the reminder right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			sched := newScheduler(svc)
			now := svc.Now()
			out := cmd.OutOrStdout()

			res := sched.OnFire(now)
			if res.Action == reminder.ActionFired {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconBell+" "+res.Message))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Nothing to remind (snoozed or already logged)."))
			}
			if reminder.IsWeeklyReflectionDue(now) {
				if err := sched.RecordWeeklyReflection(now); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Warn.Render(ui.IconJournal+" Time for weekly reflection!"))
			}
			return nil
		},
	}
}

func newRemindSnoozeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snooze",
		Short: "Defer the reminder by an hour",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := newScheduler(svc).Snooze(svc.Now()); err != nil {
				return err
			}
			until := svc.Now().Add(reminder.SnoozeDuration)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("%s Snoozed until %s.", ui.IconSnooze, until.Format("15:04"))))
			return nil
		},
	}
}

func setReminderEnabled(cmd *cobra.Command, enabled bool) error {
	svc, err := openService()
	if err != nil {
		return err
	}
	svc.State().Reminders.Enabled = enabled
	if err := svc.Save(); err != nil {
		return err
	}
	word := "off"
	if enabled {
		word = "on"
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Reminders "+word+"."))
	return nil
}

func newRemindOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on",
		Short: "Enable the daily reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setReminderEnabled(cmd, true)
		},
	}
}

func newRemindOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disable the daily reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return setReminderEnabled(cmd, false)
		},
	}
}

func newRemindTimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "time <HH:MM>",
		Short: "Set the daily reminder time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			hour, minute := reminder.ParseTimeOfDay(args[0])
			svc.State().Reminders.Time = fmt.Sprintf("%02d:%02d", hour, minute)
			if err := svc.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Reminder time set to %02d:%02d.", hour, minute)))
			return nil
		},
	}
}

func newRemindHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			hist := svc.State().Reminders.NotificationHistory
			out := cmd.OutOrStdout()
			if len(hist) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no notifications yet)"))
				return nil
			}
			for i := len(hist) - 1; i >= 0; i-- {
				n := hist[i]
				fmt.Fprintf(out, "%s  %s  %s\n", ui.Muted.Render(n.Timestamp), ui.Key.Render(n.Type), n.Message)
			}
			return nil
		},
	}
}

func newRemindWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground and print reminders as they fire",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			rs := svc.State().Reminders
			out := cmd.OutOrStdout()

			runner := reminder.NewRunner(newScheduler(svc), func(message string) {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconBell+" "+message))
			})
			runner.Arm(rs.Enabled)
			defer runner.Stop()

			if rs.Enabled {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Watching. Next reminder at %s. Ctrl+C to stop.",
					newScheduler(svc).Next(svc.Now()).Format("15:04"))))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Reminders are off; nothing will fire. Ctrl+C to stop."))
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop
			return nil
		},
	}
}
