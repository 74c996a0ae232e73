package root

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"habitbuilder/internal/journal"
	"habitbuilder/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write today's journal and manage its questions",
	}

	cmd.AddCommand(
		newJournalWriteCmd(),
		newJournalShowCmd(),
		newJournalQuestionsCmd(),
	)
	return cmd
}

func newJournalWriteCmd() *cobra.Command {
	var note string
	var answers []string

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Attach a journal entry to today's log",
		Long: "Attach a journal entry to today's log. Answers reference questions by\n" +
			"index: \"0=some text\" for free text, \"1=2\" to pick option 2, and\n" +
			"\"1=3:details\" to pick the Other option with text.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}

			entry := journal.Entry{FreeText: strings.TrimSpace(note)}
			questions := svc.State().Reminders.JournalQuestions
			for _, spec := range answers {
				a, err := parseAnswer(spec, questions)
				if err != nil {
					return err
				}
				entry.Answers = append(entry.Answers, a)
			}

			if err := svc.SaveJournal(entry); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconJournal+" Journal saved."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "free-text reflection")
	cmd.Flags().StringArrayVarP(&answers, "answer", "a", nil, "answer as idx=value (repeatable)")
	return cmd
}

// parseAnswer turns "idx=value" into an Answer shaped for its question:
// free-text questions take the value verbatim, choice questions take an
// option number with an optional ":text" suffix for the Other slot.
func parseAnswer(spec string, questions []journal.Question) (journal.Answer, error) {
	idxStr, value, ok := strings.Cut(spec, "=")
	if !ok {
		return journal.Answer{}, fmt.Errorf("answer %q must look like idx=value", spec)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil {
		return journal.Answer{}, fmt.Errorf("answer %q must look like idx=value", spec)
	}
	if idx < 0 || idx >= len(questions) {
		return journal.Answer{}, fmt.Errorf("no question at index %d", idx)
	}

	q := questions[idx]
	if q.Type == journal.TypeFreeText {
		return journal.FreeTextAnswer(idx, value), nil
	}

	selStr, text, hasText := strings.Cut(value, ":")
	selected, err := strconv.Atoi(strings.TrimSpace(selStr))
	if err != nil {
		return journal.Answer{}, fmt.Errorf("question %d takes an option number, got %q", idx, value)
	}
	if hasText {
		return journal.ChoiceOrTextAnswer(idx, selected, text), nil
	}
	return journal.ChoiceAnswer(idx, selected), nil
}

func newJournalShowCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a day's journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			day := date
			if day == "" {
				day = svc.Today()
			}
			log, ok := svc.State().DayLogs[day]
			if !ok {
				return fmt.Errorf("no log for %s", day)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Journal — "+day))
			if log.Journal.IsZero() {
				fmt.Fprintln(out, ui.Muted.Render("(no journal entry)"))
				return nil
			}
			if log.Journal.FreeText != "" {
				fmt.Fprintln(out, log.Journal.FreeText)
			}
			questions := svc.State().Reminders.JournalQuestions
			for _, a := range log.Journal.Answers {
				fmt.Fprintln(out, renderAnswer(a, questions))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to show (YYYY-MM-DD, default today)")
	return cmd
}

// renderAnswer resolves an answer against the current question list.
// Questions may have been edited since; unknown indices still display.
func renderAnswer(a journal.Answer, questions []journal.Question) string {
	prompt := fmt.Sprintf("Question %d", a.QuestionIndex)
	var q *journal.Question
	if a.QuestionIndex >= 0 && a.QuestionIndex < len(questions) {
		q = &questions[a.QuestionIndex]
		prompt = q.Text
	}

	value := a.Text
	if a.Kind != journal.KindFreeText {
		value = fmt.Sprintf("option %d", a.Selected)
		if q != nil && a.Selected >= 0 && a.Selected < len(q.Options) {
			value = q.Options[a.Selected]
		}
		if a.Kind == journal.KindChoiceOrText && a.Text != "" {
			value += ": " + a.Text
		}
	}
	return fmt.Sprintf("%s %s", ui.Key.Render(prompt+":"), value)
}

func newJournalQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Manage journal questions",
	}

	cmd.AddCommand(
		newQuestionsListCmd(),
		newQuestionsAddCmd(),
		newQuestionsEditCmd(),
		newQuestionsRemoveCmd(),
	)
	return cmd
}

func newQuestionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List journal questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, q := range svc.State().Reminders.JournalQuestions {
				fmt.Fprintf(out, "%d. %s %s\n", i, q.Text, ui.Muted.Render("["+string(q.Type)+"]"))
				for j, opt := range q.Options {
					fmt.Fprintf(out, "   %d) %s\n", j, opt)
				}
			}
			return nil
		},
	}
}

func questionFromFlags(text, qtype string, options []string) (journal.Question, error) {
	t, err := journal.ParseQuestionType(qtype)
	if err != nil {
		return journal.Question{}, err
	}
	return journal.Question{Text: text, Type: t, Options: options}, nil
}

func newQuestionsAddCmd() *cobra.Command {
	var qtype string
	var options []string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a journal question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			q, err := questionFromFlags(args[0], qtype, options)
			if err != nil {
				return err
			}
			if err := svc.AddQuestion(q); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Question added."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&qtype, "type", "t", string(journal.TypeFreeText), "FreeText, MultipleChoice, or MultipleChoiceOrText")
	cmd.Flags().StringArrayVarP(&options, "option", "o", nil, "choice option (repeatable)")
	return cmd
}

func newQuestionsEditCmd() *cobra.Command {
	var qtype string
	var options []string

	cmd := &cobra.Command{
		Use:   "edit <idx> <text>",
		Short: "Replace the question at an index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[0])
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			q, err := questionFromFlags(args[1], qtype, options)
			if err != nil {
				return err
			}
			if err := svc.UpdateQuestion(idx, q); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Question updated."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&qtype, "type", "t", string(journal.TypeFreeText), "FreeText, MultipleChoice, or MultipleChoiceOrText")
	cmd.Flags().StringArrayVarP(&options, "option", "o", nil, "choice option (repeatable)")
	return cmd
}

func newQuestionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <idx>",
		Short: "Remove the question at an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[0])
			}
			svc, err := openService()
			if err != nil {
				return err
			}
			if err := svc.RemoveQuestion(idx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Question removed."))
			return nil
		},
	}
}
