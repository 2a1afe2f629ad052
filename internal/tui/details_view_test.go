package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upListener struct {
	ups int
}

func (l *upListener) OnNavigateUpClicked() { l.ups++ }

func newDetailsView() *QuestionDetailsView {
	return NewViewFactory(DefaultKeyMap(), DefaultStyles()).NewQuestionDetailsView()
}

func TestQuestionDetailsView_BindAndRender(t *testing.T) {
	v := newDetailsView()
	v.SetSize(60, 20)

	v.BindQuestion(domain.QuestionDetails{
		Question: domain.Question{
			ID:          3,
			Title:       "Why is the sky blue?",
			Score:       5,
			AnswerCount: 2,
			Owner:       domain.Owner{DisplayName: "carol"},
			Link:        "https://stackoverflow.com/q/3",
		},
		Body: "<p>Rayleigh &amp; friends</p>",
	})

	require.NotNil(t, v.Details())
	out := v.Render("")
	assert.Contains(t, out, "Why is the sky blue?")
	assert.Contains(t, out, "score 5 · 2 answers · asked by carol")
	assert.Contains(t, out, "Rayleigh & friends")
	assert.Contains(t, out, "https://stackoverflow.com/q/3")
}

func TestQuestionDetailsView_RenderBeforeBind(t *testing.T) {
	v := newDetailsView()
	assert.Contains(t, v.Render("*"), "Question not loaded")

	v.ShowProgressIndication()
	assert.Contains(t, v.Render("*"), "* Loading question")

	v.HideProgressIndication()
	assert.False(t, v.Loading())
}

func TestQuestionDetailsView_BackNotifiesListeners(t *testing.T) {
	v := newDetailsView()
	l := &upListener{}
	v.RegisterListener(l)

	v.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	v.HandleKey(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 1, l.ups)
}
