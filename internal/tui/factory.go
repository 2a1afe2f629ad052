package tui

import "github.com/charmbracelet/bubbles/viewport"

// ViewFactory creates the screen views with shared keys and styles.
type ViewFactory struct {
	styles Styles
	keys   KeyMap
}

// NewViewFactory creates a new ViewFactory.
func NewViewFactory(keys KeyMap, styles Styles) *ViewFactory {
	return &ViewFactory{keys: keys, styles: styles}
}

// NewQuestionsListView creates an empty list view.
func (f *ViewFactory) NewQuestionsListView() *QuestionsListView {
	return &QuestionsListView{keys: f.keys, styles: f.styles}
}

// NewQuestionDetailsView creates an empty details view.
func (f *ViewFactory) NewQuestionDetailsView() *QuestionDetailsView {
	return &QuestionDetailsView{
		keys:     f.keys,
		styles:   f.styles,
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
}
