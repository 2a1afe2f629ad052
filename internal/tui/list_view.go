package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/screens/questionslist"
	"github.com/runoshun/stackq/internal/viewmvc"
)

var _ questionslist.View = (*QuestionsListView)(nil)

// QuestionsListView renders the latest questions and reports user actions to its listeners.
// All methods must be called from the event loop.
type QuestionsListView struct {
	viewmvc.Observable[questionslist.Listener]

	styles    Styles
	keys      KeyMap
	questions []domain.Question
	cursor    int
	progress  int
}

// ShowProgressIndication implements questionslist.View.
func (v *QuestionsListView) ShowProgressIndication() {
	v.progress++
}

// HideProgressIndication implements questionslist.View.
func (v *QuestionsListView) HideProgressIndication() {
	if v.progress > 0 {
		v.progress--
	}
}

// BindQuestions implements questionslist.View.
func (v *QuestionsListView) BindQuestions(questions []domain.Question) {
	v.questions = append([]domain.Question(nil), questions...)
	if v.cursor >= len(v.questions) {
		v.cursor = max(len(v.questions)-1, 0)
	}
}

// Loading reports whether a fetch is showing progress.
func (v *QuestionsListView) Loading() bool {
	return v.progress > 0
}

// Questions returns the bound questions.
func (v *QuestionsListView) Questions() []domain.Question {
	return v.questions
}

// Selected returns the question under the cursor.
func (v *QuestionsListView) Selected() (domain.Question, bool) {
	if v.cursor < 0 || v.cursor >= len(v.questions) {
		return domain.Question{}, false
	}
	return v.questions[v.cursor], true
}

// HandleKey moves the cursor or notifies the listeners.
func (v *QuestionsListView) HandleKey(msg tea.KeyMsg, pageSize int) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.questions)-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keys.PrevPage):
		v.cursor = max(v.cursor-max(pageSize, 1), 0)
	case key.Matches(msg, v.keys.NextPage):
		v.cursor = min(v.cursor+max(pageSize, 1), max(len(v.questions)-1, 0))
	case key.Matches(msg, v.keys.Refresh):
		for _, l := range v.Listeners() {
			l.OnRefreshClicked()
		}
	case key.Matches(msg, v.keys.Enter):
		q, ok := v.Selected()
		if !ok {
			return
		}
		for _, l := range v.Listeners() {
			l.OnQuestionClicked(q)
		}
	}
}

// Render renders the list into a width x height area.
func (v *QuestionsListView) Render(width, height int, spinner string) string {
	var b strings.Builder

	title := v.styles.HeaderText.Render("StackOverflow · latest active questions")
	if v.Loading() {
		title += " " + spinner
	}
	b.WriteString(truncate.String(v.styles.Header.Render(title), uint(max(width, 0))))
	b.WriteString("\n")
	listHeight := max(height-2, 1)

	if len(v.questions) == 0 {
		msg := "No questions loaded. Press r to refresh."
		if v.Loading() {
			msg = "Loading questions..."
		}
		b.WriteString(lipgloss.Place(width, listHeight, lipgloss.Center, lipgloss.Center, v.styles.Empty.Render(msg)))
		return b.String()
	}

	// Keep the cursor inside the visible window
	start := 0
	if v.cursor >= listHeight {
		start = v.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(v.questions))

	for i := start; i < end; i++ {
		b.WriteString(v.renderLine(v.questions[i], i == v.cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *QuestionsListView) renderLine(q domain.Question, selected bool, width int) string {
	// Cursor indicator (▸ for selected, space for normal)
	cursor := " "
	titleStyle := v.styles.TitleNormal
	if selected {
		cursor = v.styles.CursorSelected.Render("▸")
		titleStyle = v.styles.TitleSelected
	}

	answered := " "
	if q.IsAnswered {
		answered = v.styles.Answered.Render("✓")
	}

	line := fmt.Sprintf("%s %s %s %s  %s",
		cursor,
		v.styles.Score.Render(fmt.Sprintf("%d", q.Score)),
		answered,
		titleStyle.Render(q.Title),
		v.styles.Owner.Render(q.Owner.DisplayName),
	)
	if width > 0 {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	return line
}
