// Package tui provides the terminal user interface for stackq.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/stackq/internal/app"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/screens/questiondetails"
	"github.com/runoshun/stackq/internal/screens/questionslist"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	_ domain.ScreensNavigator = (*Model)(nil)
	_ domain.DialogsNavigator = (*Model)(nil)
)

// screen is one entry of the navigation stack.
type screen interface {
	start()
	stop()
	wait()
	loading() bool
	handleKey(msg tea.KeyMsg, height int) tea.Cmd
	render(width, height int, spinner string) string
	helpKeys(keys KeyMap) []key.Binding
}

type listScreen struct {
	view *QuestionsListView
	ctrl *questionslist.Controller
}

func (s *listScreen) start()        { s.ctrl.Start() }
func (s *listScreen) stop()         { s.ctrl.Stop() }
func (s *listScreen) wait()         { s.ctrl.Wait() }
func (s *listScreen) loading() bool { return s.view.Loading() }

func (s *listScreen) handleKey(msg tea.KeyMsg, height int) tea.Cmd {
	s.view.HandleKey(msg, height)
	return nil
}

func (s *listScreen) render(width, height int, spinner string) string {
	return s.view.Render(width, height, spinner)
}

func (s *listScreen) helpKeys(keys KeyMap) []key.Binding { return keys.ListHelp() }

type detailsScreen struct {
	view *QuestionDetailsView
	ctrl *questiondetails.Controller
}

func (s *detailsScreen) start()        { s.ctrl.Start() }
func (s *detailsScreen) stop()         { s.ctrl.Stop() }
func (s *detailsScreen) wait()         { s.ctrl.Wait() }
func (s *detailsScreen) loading() bool { return s.view.Loading() }

func (s *detailsScreen) handleKey(msg tea.KeyMsg, _ int) tea.Cmd {
	return s.view.HandleKey(msg)
}

func (s *detailsScreen) render(width, height int, spinner string) string {
	s.view.SetSize(width, height)
	return s.view.Render(spinner)
}

func (s *detailsScreen) helpKeys(keys KeyMap) []key.Binding { return keys.DetailsHelp() }

// Model is the root bubbletea model.
// It owns the screen stack and implements the screens and dialogs navigators.
type Model struct {
	// Dependencies (pointers first for alignment)
	container  *app.Container
	factory    *ViewFactory
	dispatcher domain.Dispatcher

	// State
	stack   []screen
	retired []screen

	// Components
	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model

	// Numeric state (smaller types last)
	width       int
	height      int
	dialog      bool
	ticking     bool
	quitting    bool
	initialized bool
}

// New creates a new root Model.
// dispatcher must run closures on the event loop that drives this model.
func New(c *app.Container, dispatcher domain.Dispatcher) *Model {
	keys := DefaultKeyMap()
	styles := DefaultStyles()
	return &Model{
		container:  c,
		factory:    NewViewFactory(keys, styles),
		dispatcher: dispatcher,
		keys:       keys,
		styles:     styles,
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(c *app.Container) error {
	d := NewProgramDispatcher()
	m := New(c, d)
	p := tea.NewProgram(m, tea.WithAltScreen())
	d.Attach(p)

	_, err := p.Run()
	m.Shutdown()
	m.Wait()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init pushes the questions list screen.
func (m *Model) Init() tea.Cmd {
	if !m.initialized {
		m.initialized = true
		view := m.factory.NewQuestionsListView()
		ctrl := questionslist.New(m.container.FetchQuestionsUseCase(), view, m, m, m.dispatcher, m.container.Logger)
		m.push(&listScreen{view: view, ctrl: ctrl})
	}
	return m.tick()
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case MsgDispatch:
		if msg.Fn != nil {
			msg.Fn()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case spinner.TickMsg:
		if !m.anyLoading() {
			m.ticking = false
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	if m.quitting {
		m.Shutdown()
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, m.tick())
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return nil
	}
	if m.dialog {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dialog = false
		}
		return nil
	}
	top := m.top()
	if top == nil {
		return nil
	}
	return top.handleKey(msg, m.bodyHeight())
}

// tick starts the spinner when a screen shows progress.
func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.anyLoading() {
		return nil
	}
	m.ticking = true
	return m.spinner.Tick
}

func (m *Model) anyLoading() bool {
	top := m.top()
	return top != nil && top.loading()
}

func (m *Model) top() screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Model) push(s screen) {
	if top := m.top(); top != nil {
		top.stop()
	}
	m.stack = append(m.stack, s)
	s.start()
}

// ToQuestionDetails implements domain.ScreensNavigator.
func (m *Model) ToQuestionDetails(id int64) {
	view := m.factory.NewQuestionDetailsView()
	view.SetSize(m.width, m.bodyHeight())
	ctrl := questiondetails.New(m.container.FetchQuestionDetailsUseCase(), view, m, m, m.dispatcher, m.container.Logger, id)
	m.container.Logger.Debug("tui", fmt.Sprintf("open question %d", id))
	m.push(&detailsScreen{view: view, ctrl: ctrl})
}

// NavigateBack implements domain.ScreensNavigator.
// Going back from the first screen quits.
func (m *Model) NavigateBack() {
	if len(m.stack) <= 1 {
		m.quitting = true
		return
	}
	top := m.top()
	top.stop()
	m.retired = append(m.retired, top)
	m.stack = m.stack[:len(m.stack)-1]
	m.top().start()
}

// ShowServerErrorDialog implements domain.DialogsNavigator.
func (m *Model) ShowServerErrorDialog() {
	m.dialog = true
}

// DialogVisible reports whether the server error dialog is shown.
func (m *Model) DialogVisible() bool {
	return m.dialog
}

// Depth returns the number of screens on the stack.
func (m *Model) Depth() int {
	return len(m.stack)
}

// Shutdown stops every screen. It does not wait for their fetches.
func (m *Model) Shutdown() {
	for _, s := range m.stack {
		s.stop()
	}
}

// Wait blocks until the fetches of every screen have finished.
func (m *Model) Wait() {
	for _, s := range m.retired {
		s.wait()
	}
	for _, s := range m.stack {
		s.wait()
	}
}

func (m *Model) bodyHeight() int {
	// footer takes one line plus a separator
	return max(m.height-2, 1)
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.dialog {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderDialog())
	}

	top := m.top()
	if top == nil {
		return ""
	}
	body := top.render(m.width, m.bodyHeight(), m.spinner.View())
	footer := m.styles.Footer.Render(m.help.ShortHelpView(top.helpKeys(m.keys)))
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceVertical(m.bodyHeight(), lipgloss.Top, body),
		"",
		footer,
	)
}

func (m *Model) renderDialog() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.DialogTitle.Render("Server error"),
		"",
		"Could not load data from the server.",
		m.styles.Footer.Render("press enter to dismiss · q to quit"),
	)
	return m.styles.Dialog.Render(content)
}
