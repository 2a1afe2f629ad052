package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/stackq/internal/domain"
)

// FetchQuestionsInput contains the parameters for fetching the latest questions.
// The page size is fixed when the use case is built.
type FetchQuestionsInput struct{}

// FetchQuestionsResult is the result of fetching the latest questions.
type FetchQuestionsResult = domain.FetchResult[[]domain.Question]

// FetchQuestions is the use case for fetching the most recently active questions.
type FetchQuestions struct {
	api      domain.QuestionsAPI
	logger   domain.Logger
	pageSize int
}

// NewFetchQuestions creates a new FetchQuestions use case.
func NewFetchQuestions(api domain.QuestionsAPI, logger domain.Logger, pageSize int) *FetchQuestions {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &FetchQuestions{
		api:      api,
		logger:   logger,
		pageSize: pageSize,
	}
}

// Execute fetches the latest questions.
// Transport, status and decoding failures are reported as a FetchFailure with a nil error.
// The only error returned is the context error when ctx is cancelled or expires.
func (uc *FetchQuestions) Execute(ctx context.Context, _ FetchQuestionsInput) (FetchQuestionsResult, error) {
	questions, err := uc.api.LastActiveQuestions(ctx, uc.pageSize)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			uc.logger.Debug("fetch", "fetch questions cancelled")
			return nil, ctxErr
		}
		uc.logger.Warn("fetch", fmt.Sprintf("fetch questions failed: %v", err))
		return domain.Failed[[]domain.Question](), nil
	}

	uc.logger.Info("fetch", fmt.Sprintf("fetched %d questions", len(questions)))
	return domain.Succeeded(questions), nil
}
