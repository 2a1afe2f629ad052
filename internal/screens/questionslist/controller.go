// Package questionslist drives the screen that lists the latest active questions.
package questionslist

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/screens"
	"github.com/runoshun/stackq/internal/usecase"
)

// State is the loading state of the list screen.
type State int

// Loading states.
const (
	StateIdle State = iota
	StateLoading
	StateLoaded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Listener receives the user actions of the list view.
type Listener interface {
	OnRefreshClicked()
	OnQuestionClicked(q domain.Question)
}

// View is the presentation of the questions list.
// Its methods are only called through the controller's dispatcher.
type View interface {
	RegisterListener(l Listener)
	UnregisterListener(l Listener)
	ShowProgressIndication()
	HideProgressIndication()
	BindQuestions(questions []domain.Question)
}

// Fetcher fetches the latest questions.
// *usecase.FetchQuestions implements it.
type Fetcher interface {
	Execute(ctx context.Context, in usecase.FetchQuestionsInput) (usecase.FetchQuestionsResult, error)
}

// Controller runs the fetch cycles of the list screen and renders their outcome.
type Controller struct {
	fetcher    Fetcher
	view       View
	screens    domain.ScreensNavigator
	dialogs    domain.DialogsNavigator
	dispatcher domain.Dispatcher
	logger     domain.Logger
	scope      *screens.Scope
	mu         sync.Mutex
	settled    State
	inFlight   int
	loaded     bool
}

// New creates a Controller. A nil logger disables logging.
func New(
	fetcher Fetcher,
	view View,
	screensNav domain.ScreensNavigator,
	dialogs domain.DialogsNavigator,
	dispatcher domain.Dispatcher,
	logger domain.Logger,
) *Controller {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Controller{
		fetcher:    fetcher,
		view:       view,
		screens:    screensNav,
		dialogs:    dialogs,
		dispatcher: dispatcher,
		logger:     logger,
		scope:      screens.NewScope(context.Background()),
		settled:    StateIdle,
	}
}

// Start attaches the controller to its view and fetches unless data is already loaded.
func (c *Controller) Start() {
	c.scope.Renew()
	c.view.RegisterListener(c)

	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if !loaded {
		c.fetch()
	}
}

// Stop detaches from the view and cancels every outstanding fetch.
// It does not wait for them; use Wait for that.
func (c *Controller) Stop() {
	c.view.UnregisterListener(c)
	c.scope.Cancel()
}

// Refresh starts a fetch cycle even when data is loaded.
func (c *Controller) Refresh() {
	c.fetch()
}

// Wait blocks until every fetch cycle started so far has finished.
func (c *Controller) Wait() {
	c.scope.Wait()
}

// State returns the current loading state.
// Idle after a failed refresh does not mean the view is empty; see IsDataLoaded.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight > 0 {
		return StateLoading
	}
	return c.settled
}

// IsDataLoaded reports whether a fetch has succeeded at least once.
func (c *Controller) IsDataLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// OnRefreshClicked implements Listener.
func (c *Controller) OnRefreshClicked() {
	c.Refresh()
}

// OnQuestionClicked implements Listener.
func (c *Controller) OnQuestionClicked(q domain.Question) {
	c.screens.ToQuestionDetails(q.ID)
}

func (c *Controller) fetch() {
	c.mu.Lock()
	c.inFlight++
	c.mu.Unlock()

	if !c.scope.Go(c.runCycle) {
		c.finish(c.idleOrLoaded())
	}
}

func (c *Controller) runCycle(ctx context.Context) {
	// cycle tags the log lines of one fetch
	cycle := uuid.NewString()[:8]
	c.logger.Debug("questions", fmt.Sprintf("cycle %s: started", cycle))
	c.dispatcher.Dispatch(c.view.ShowProgressIndication)

	result, err := c.fetcher.Execute(ctx, usecase.FetchQuestionsInput{})

	c.dispatcher.Dispatch(func() {
		defer c.view.HideProgressIndication()

		if err != nil || ctx.Err() != nil {
			c.logger.Debug("questions", fmt.Sprintf("cycle %s: cancelled", cycle))
			c.finish(c.idleOrLoaded())
			return
		}

		domain.MatchFetch(result,
			func(questions []domain.Question) {
				c.logger.Info("questions", fmt.Sprintf("cycle %s: bound %d questions", cycle, len(questions)))
				c.mu.Lock()
				c.loaded = true
				c.mu.Unlock()
				c.finish(StateLoaded)
				c.view.BindQuestions(questions)
			},
			func() {
				c.logger.Warn("questions", fmt.Sprintf("cycle %s: failed, showing server error dialog", cycle))
				c.finish(StateIdle)
				c.dialogs.ShowServerErrorDialog()
			},
		)
	})
}

func (c *Controller) idleOrLoaded() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return StateLoaded
	}
	return StateIdle
}

func (c *Controller) finish(next State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	c.settled = next
}
