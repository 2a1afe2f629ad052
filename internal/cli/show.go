package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/infra/htmltext"
	"github.com/runoshun/stackq/internal/usecase"
	"github.com/spf13/cobra"
)

// textWidth is the wrap width of the text output.
const textWidth = 80

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a question with its body",
		Long: `Show a question with its body.

The text output strips HTML from the body and wraps it to 80 columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			if err := checkFormat(output, formatText, formatJSON, formatYAML); err != nil {
				return err
			}

			id, err := parseQuestionID(args[0])
			if err != nil {
				return err
			}

			result, err := c.FetchQuestionDetailsUseCase().Execute(cmd.Context(), usecase.FetchQuestionDetailsInput{QuestionID: id})
			if err != nil {
				return err
			}

			var details domain.QuestionDetails
			failed := false
			domain.MatchFetch(result,
				func(d domain.QuestionDetails) { details = d },
				func() { failed = true },
			)
			if failed {
				return fmt.Errorf("question %d: %w", id, domain.ErrServerError)
			}

			w := cmd.OutOrStdout()
			if output == formatText {
				printQuestionText(w, details)
				return nil
			}
			return writeStructured(w, output, details)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")

	return cmd
}

// parseQuestionID parses a positive question ID.
func parseQuestionID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidQuestionID, s)
	}
	return id, nil
}

// printQuestionText prints the question title, metadata and plain-text body.
func printQuestionText(w io.Writer, d domain.QuestionDetails) {
	_, _ = fmt.Fprintf(w, "# %d: %s\n", d.ID, d.Title)
	_, _ = fmt.Fprintf(w, "score %d, %d answers, asked by %s\n", d.Score, d.AnswerCount, d.Owner.DisplayName)
	if len(d.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "tags: %s\n", strings.Join(d.Tags, ", "))
	}
	if d.Link != "" {
		_, _ = fmt.Fprintf(w, "link: %s\n", d.Link)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, htmltext.ToText(d.Body, textWidth))
}
