package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/stackq/internal/domain"
)

// FetchQuestionDetailsInput contains the parameters for fetching one question.
type FetchQuestionDetailsInput struct {
	QuestionID int64 // Question ID (required)
}

// FetchQuestionDetailsResult is the result of fetching one question.
type FetchQuestionDetailsResult = domain.FetchResult[domain.QuestionDetails]

// FetchQuestionDetails is the use case for fetching a question with its body.
type FetchQuestionDetails struct {
	api    domain.QuestionsAPI
	logger domain.Logger
}

// NewFetchQuestionDetails creates a new FetchQuestionDetails use case.
func NewFetchQuestionDetails(api domain.QuestionsAPI, logger domain.Logger) *FetchQuestionDetails {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &FetchQuestionDetails{
		api:    api,
		logger: logger,
	}
}

// Execute fetches the question details.
// It follows the same contract as FetchQuestions.Execute: failures become a
// FetchFailure and only context errors are returned.
func (uc *FetchQuestionDetails) Execute(ctx context.Context, in FetchQuestionDetailsInput) (FetchQuestionDetailsResult, error) {
	details, err := uc.api.QuestionDetails(ctx, in.QuestionID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			uc.logger.Debug("fetch", fmt.Sprintf("fetch question %d cancelled", in.QuestionID))
			return nil, ctxErr
		}
		uc.logger.Warn("fetch", fmt.Sprintf("fetch question %d failed: %v", in.QuestionID, err))
		return domain.Failed[domain.QuestionDetails](), nil
	}
	if details == nil {
		uc.logger.Warn("fetch", fmt.Sprintf("fetch question %d returned no data", in.QuestionID))
		return domain.Failed[domain.QuestionDetails](), nil
	}

	uc.logger.Info("fetch", fmt.Sprintf("fetched question %d", in.QuestionID))
	return domain.Succeeded(*details), nil
}
