package questiondetails

import (
	"errors"
	"sync"
	"testing"

	"github.com/runoshun/stackq/internal/domain"
	"github.com/runoshun/stackq/internal/testutil"
	"github.com/runoshun/stackq/internal/usecase"
	"github.com/runoshun/stackq/internal/viewmvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingView struct {
	viewmvc.Observable[Listener]
	events []string
	bound  []domain.QuestionDetails
	mu     sync.Mutex
}

func (v *recordingView) record(e string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.events = append(v.events, e)
}

func (v *recordingView) ShowProgressIndication() { v.record("show") }
func (v *recordingView) HideProgressIndication() { v.record("hide") }

func (v *recordingView) BindQuestion(details domain.QuestionDetails) {
	v.record("bind")
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bound = append(v.bound, details)
}

func newController(api *testutil.MockQuestionsAPI, view *recordingView, screens *testutil.MockScreensNavigator, dialogs *testutil.MockDialogsNavigator, id int64) *Controller {
	return New(usecase.NewFetchQuestionDetails(api, nil), view, screens, dialogs, &testutil.InlineDispatcher{}, nil, id)
}

func TestController_Start_BindsQuestion(t *testing.T) {
	// Setup
	api := testutil.NewMockQuestionsAPI()
	api.Details[5] = &domain.QuestionDetails{Question: domain.Question{ID: 5, Title: "T"}, Body: "<p>B</p>"}
	view := &recordingView{}
	dialogs := &testutil.MockDialogsNavigator{}
	ctrl := newController(api, view, &testutil.MockScreensNavigator{}, dialogs, 5)

	// Execute
	ctrl.Start()
	ctrl.Wait()

	// Assert
	assert.Equal(t, []string{"show", "bind", "hide"}, view.events)
	require.Len(t, view.bound, 1)
	assert.Equal(t, "T", view.bound[0].Title)
	assert.Equal(t, "<p>B</p>", view.bound[0].Body)
	assert.True(t, ctrl.IsDataLoaded())
	assert.Equal(t, 0, dialogs.Count())
	assert.Equal(t, int64(5), ctrl.QuestionID())
}

func TestController_Start_FailureShowsDialog(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.DetailsErr = errors.New("boom")
	view := &recordingView{}
	dialogs := &testutil.MockDialogsNavigator{}
	ctrl := newController(api, view, &testutil.MockScreensNavigator{}, dialogs, 5)

	ctrl.Start()
	ctrl.Wait()

	assert.Equal(t, []string{"show", "hide"}, view.events)
	assert.Equal(t, 1, dialogs.Count())
	assert.False(t, ctrl.IsDataLoaded())
}

func TestController_Restart_DoesNotRefetch(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.Details[5] = &domain.QuestionDetails{Question: domain.Question{ID: 5}}
	view := &recordingView{}
	ctrl := newController(api, view, &testutil.MockScreensNavigator{}, &testutil.MockDialogsNavigator{}, 5)

	ctrl.Start()
	ctrl.Wait()
	ctrl.Stop()
	ctrl.Start()
	ctrl.Wait()

	assert.Equal(t, []int64{5}, api.DetailsCalls)
}

func TestController_Stop_CancelsLoad(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	api.Details[5] = &domain.QuestionDetails{Question: domain.Question{ID: 5}}
	api.Block = make(chan struct{})
	api.Started = make(chan struct{}, 1)
	view := &recordingView{}
	dialogs := &testutil.MockDialogsNavigator{}
	ctrl := newController(api, view, &testutil.MockScreensNavigator{}, dialogs, 5)

	ctrl.Start()
	<-api.Started
	ctrl.Stop()
	ctrl.Wait()

	assert.Equal(t, []string{"show", "hide"}, view.events)
	assert.Equal(t, 0, dialogs.Count())
	assert.Empty(t, view.Listeners())
}

func TestController_NavigateUp(t *testing.T) {
	api := testutil.NewMockQuestionsAPI()
	view := &recordingView{}
	screens := &testutil.MockScreensNavigator{}
	ctrl := newController(api, view, screens, &testutil.MockDialogsNavigator{}, 5)
	ctrl.Start()
	ctrl.Wait()

	for _, l := range view.Listeners() {
		l.OnNavigateUpClicked()
	}

	assert.Equal(t, 1, screens.BackCalls)
}
