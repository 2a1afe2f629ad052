package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/usecase"
	"github.com/spf13/cobra"
)

// maxTitleWidth limits the TITLE column of the table output.
const maxTitleWidth = 80

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var pageSize int
	var output string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the latest active questions",
		Long: `List the most recently active questions.

Output formats:
  table  ID, ANSWERS, SCORE, OWNER and TITLE columns (default)
  json   JSON array
  yaml   YAML sequence`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireContainer(c); err != nil {
				return err
			}
			if err := checkFormat(output, formatTable, formatJSON, formatYAML); err != nil {
				return err
			}

			size := c.Config.API.PageSize
			if cmd.Flags().Changed("page-size") {
				if pageSize < 1 || pageSize > domain.MaxPageSize {
					return fmt.Errorf("%w: got %d", domain.ErrInvalidPageSize, pageSize)
				}
				size = pageSize
			}

			result, err := c.FetchQuestionsUseCaseWithPageSize(size).Execute(cmd.Context(), usecase.FetchQuestionsInput{})
			if err != nil {
				return err
			}

			var questions []domain.Question
			failed := false
			domain.MatchFetch(result,
				func(qs []domain.Question) { questions = qs },
				func() { failed = true },
			)
			if failed {
				return domain.ErrServerError
			}

			w := cmd.OutOrStdout()
			if output == formatTable {
				return printQuestionTable(w, questions)
			}
			if questions == nil {
				questions = []domain.Question{}
			}
			return writeStructured(w, output, questions)
		},
	}

	cmd.Flags().IntVarP(&pageSize, "page-size", "n", domain.DefaultPageSize, "Number of questions to fetch (1-100)")
	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format: table, json or yaml")

	return cmd
}

// printQuestionTable prints questions in a tab-separated table.
func printQuestionTable(w io.Writer, questions []domain.Question) error {
	if len(questions) == 0 {
		_, _ = fmt.Fprintln(w, "No questions found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tANSWERS\tSCORE\tOWNER\tTITLE")
	for _, q := range questions {
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\n",
			q.ID,
			q.AnswerCount,
			q.Score,
			q.Owner.DisplayName,
			runewidth.Truncate(q.Title, maxTitleWidth, "..."),
		)
	}
	return tw.Flush()
}
