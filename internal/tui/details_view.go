package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/infra/htmltext"
	"github.com/runoshun/stackq/internal/screens/questiondetails"
	"github.com/runoshun/stackq/internal/viewmvc"
)

var _ questiondetails.View = (*QuestionDetailsView)(nil)

// QuestionDetailsView renders one question in a scrollable viewport.
// All methods must be called from the event loop.
type QuestionDetailsView struct {
	viewmvc.Observable[questiondetails.Listener]

	details  *domain.QuestionDetails
	styles   Styles
	keys     KeyMap
	viewport viewport.Model
	progress int
}

// ShowProgressIndication implements questiondetails.View.
func (v *QuestionDetailsView) ShowProgressIndication() {
	v.progress++
}

// HideProgressIndication implements questiondetails.View.
func (v *QuestionDetailsView) HideProgressIndication() {
	if v.progress > 0 {
		v.progress--
	}
}

// BindQuestion implements questiondetails.View.
func (v *QuestionDetailsView) BindQuestion(details domain.QuestionDetails) {
	v.details = &details
	v.refreshContent()
}

// Loading reports whether the question is being fetched.
func (v *QuestionDetailsView) Loading() bool {
	return v.progress > 0
}

// Details returns the bound question, or nil.
func (v *QuestionDetailsView) Details() *domain.QuestionDetails {
	return v.details
}

// SetSize resizes the viewport and rewraps the content.
func (v *QuestionDetailsView) SetSize(width, height int) {
	if v.viewport.Width == width && v.viewport.Height == height {
		return
	}
	v.viewport.Width = width
	v.viewport.Height = height
	v.refreshContent()
}

// HandleKey scrolls the viewport or notifies the listeners.
func (v *QuestionDetailsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, v.keys.Back) {
		for _, l := range v.Listeners() {
			l.OnNavigateUpClicked()
		}
		return nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

func (v *QuestionDetailsView) refreshContent() {
	if v.details == nil {
		return
	}
	width := v.viewport.Width
	d := v.details

	var b strings.Builder
	b.WriteString(v.styles.DetailTitle.Render(wordwrap.String(d.Title, max(width, 1))))
	b.WriteString("\n")
	b.WriteString(v.styles.DetailMeta.Render(fmt.Sprintf("score %d · %d answers · asked by %s", d.Score, d.AnswerCount, d.Owner.DisplayName)))
	b.WriteString("\n")
	if len(d.Tags) > 0 {
		tags := make([]string, 0, len(d.Tags))
		for _, t := range d.Tags {
			tags = append(tags, "["+t+"]")
		}
		b.WriteString(v.styles.Tag.Render(strings.Join(tags, " ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(htmltext.ToText(d.Body, width))
	if d.Link != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.DetailMeta.Render(d.Link))
	}

	v.viewport.SetContent(b.String())
}

// Render renders the details screen.
func (v *QuestionDetailsView) Render(spinner string) string {
	if v.details == nil {
		msg := "Question not loaded."
		if v.Loading() {
			msg = spinner + " Loading question..."
		}
		return v.styles.Empty.Render(msg)
	}
	return v.viewport.View()
}
