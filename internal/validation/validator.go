package validation

import (
	"strings"

	"quizquest/internal/domain"
	"quizquest/internal/dto"
)

const maxSelectionsPerQuestion = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSubmitRequest validates a quiz submission body. The answers map
// must be present; option id lists may be empty (an unanswered question is
// graded incorrect, not rejected).
func (v *Validator) ValidateSubmitRequest(quizID string, req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.ValidationError{Field: "quiz_id", Message: "is required"})
	}

	if req == nil || req.Answers == nil {
		errors = append(errors, domain.ValidationError{Field: "answers", Message: "must be an object mapping question ids to selected option ids"})
		return errors
	}

	for questionID, selections := range req.Answers {
		if strings.TrimSpace(questionID) == "" {
			errors = append(errors, domain.ValidationError{Field: "answers", Message: "contains an empty question id"})
			continue
		}
		if len(selections) > maxSelectionsPerQuestion {
			errors = append(errors, domain.ValidationError{Field: "answers." + questionID, Message: "has too many selected options"})
			continue
		}
		for _, optionID := range selections {
			if strings.TrimSpace(optionID) == "" {
				errors = append(errors, domain.ValidationError{Field: "answers." + questionID, Message: "contains an empty option id"})
				break
			}
		}
	}

	return errors
}

// ValidatePagination normalizes limit/offset query parameters.
func (v *Validator) ValidatePagination(p *dto.Pagination, defaultLimit, maxLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
