// Package questiondetails drives the screen that shows one question with its body.
package questiondetails

import (
	"context"
	"fmt"
	"sync"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/screens"
	"github.com/runoshun/stackq/internal/usecase"
)

// Listener receives the user actions of the details view.
type Listener interface {
	OnNavigateUpClicked()
}

// View is the presentation of one question.
type View interface {
	RegisterListener(l Listener)
	UnregisterListener(l Listener)
	ShowProgressIndication()
	HideProgressIndication()
	BindQuestion(details domain.QuestionDetails)
}

// Fetcher fetches one question.
// *usecase.FetchQuestionDetails implements it.
type Fetcher interface {
	Execute(ctx context.Context, in usecase.FetchQuestionDetailsInput) (usecase.FetchQuestionDetailsResult, error)
}

// Controller loads the question once and renders it.
type Controller struct {
	fetcher    Fetcher
	view       View
	screens    domain.ScreensNavigator
	dialogs    domain.DialogsNavigator
	dispatcher domain.Dispatcher
	logger     domain.Logger
	scope      *screens.Scope
	questionID int64
	mu         sync.Mutex
	loaded     bool
}

// New creates a Controller for the question with the given ID.
func New(
	fetcher Fetcher,
	view View,
	screensNav domain.ScreensNavigator,
	dialogs domain.DialogsNavigator,
	dispatcher domain.Dispatcher,
	logger domain.Logger,
	questionID int64,
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
		questionID: questionID,
	}
}

// QuestionID returns the question this controller shows.
func (c *Controller) QuestionID() int64 {
	return c.questionID
}

// Start attaches to the view and fetches the question unless it is loaded.
func (c *Controller) Start() {
	c.scope.Renew()
	c.view.RegisterListener(c)

	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if !loaded {
		c.scope.Go(c.load)
	}
}

// Stop detaches from the view and cancels the outstanding fetch.
func (c *Controller) Stop() {
	c.view.UnregisterListener(c)
	c.scope.Cancel()
}

// Wait blocks until the outstanding fetch has finished.
func (c *Controller) Wait() {
	c.scope.Wait()
}

// IsDataLoaded reports whether the question has been bound.
func (c *Controller) IsDataLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// OnNavigateUpClicked implements Listener.
func (c *Controller) OnNavigateUpClicked() {
	c.screens.NavigateBack()
}

func (c *Controller) load(ctx context.Context) {
	c.dispatcher.Dispatch(c.view.ShowProgressIndication)

	result, err := c.fetcher.Execute(ctx, usecase.FetchQuestionDetailsInput{QuestionID: c.questionID})

	c.dispatcher.Dispatch(func() {
		defer c.view.HideProgressIndication()

		if err != nil || ctx.Err() != nil {
			c.logger.Debug("details", fmt.Sprintf("load of question %d cancelled", c.questionID))
			return
		}

		domain.MatchFetch(result,
			func(details domain.QuestionDetails) {
				c.mu.Lock()
				c.loaded = true
				c.mu.Unlock()
				c.view.BindQuestion(details)
			},
			func() {
				c.logger.Warn("details", fmt.Sprintf("load of question %d failed", c.questionID))
				c.dialogs.ShowServerErrorDialog()
			},
		)
	})
}
