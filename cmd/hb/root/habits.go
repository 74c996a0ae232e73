package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitbuilder/internal/ui"
)

func newHabitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Manage the habit list",
	}

	cmd.AddCommand(
		newHabitsListCmd(),
		newHabitsAddCmd(),
		newHabitsEditCmd(),
		newHabitsRemoveCmd(),
		newHabitsRemindCmd(),
	)
	return cmd
}

func newHabitsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			for _, h := range svc.State().Habits {
				remind := ""
				if !svc.HabitReminderEnabled(h.Name) {
					remind = " " + ui.Muted.Render("(reminders off)")
				}
				fmt.Fprintf(out, "- %s %s%s\n", h.Name, ui.Muted.Render(fmt.Sprintf("(%d pts)", h.Points)), remind)
			}
			return nil
		},
	}
}

func newHabitsAddCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.AddHabit(args[0], points); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Added %q (%d pts).", args[0], points)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&points, "points", "p", 5, "points awarded on completion")
	return cmd
}

func newHabitsEditCmd() *cobra.Command {
	var newName string
	var points int

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Rename a habit or change its points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			h, ok := svc.State().Habit(args[0])
			if !ok {
				return fmt.Errorf("unknown habit %q", args[0])
			}
			name := newName
			if name == "" {
				name = h.Name
			}
			if points == 0 {
				points = h.Points
			}
			if err := svc.UpdateHabit(args[0], name, points); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Updated %q (%d pts).", name, points)))
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new habit name")
	cmd.Flags().IntVarP(&points, "points", "p", 0, "new points value")
	return cmd
}

func newHabitsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a habit (history keeps its old entries)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.RemoveHabit(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Removed %q.", args[0])))
			return nil
		},
	}
}

func newHabitsRemindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind <name> <on|off>",
		Short: "Toggle whether a habit appears in reminders",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[1] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return errors.New("second argument must be on or off")
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.SetHabitReminder(args[0], enabled); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("Reminders %s for %q.", args[1], args[0])))
			return nil
		},
	}
}
