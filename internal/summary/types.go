package summary

import (
	"context"
	"errors"
	"strings"
)

// Sentinel is posted in place of a summary whenever generation fails.
const Sentinel = "Error: couldn't generate summary"

var (
	ErrQueryTooLarge = errors.New("query too large")
	ErrEmptyResponse = errors.New("empty completion response")
)

type FailureCategory string

const (
	FailureCategoryQueryTooLarge FailureCategory = "query_too_large"
	FailureCategoryEmpty         FailureCategory = "empty_response"
	FailureCategoryTimeout       FailureCategory = "timeout"
	FailureCategoryError         FailureCategory = "error"
)

// Result is the outcome of one generation. Text always holds what would be
// posted: the model output on success, Sentinel otherwise.
type Result struct {
	Text            string          `json:"text"`
	Successful      bool            `json:"successful"`
	FailureReason   string          `json:"failure_reason,omitempty"`
	FailureCategory FailureCategory `json:"failure_category,omitempty"`
}

func GetFailureDetails(err error) (reason string, category FailureCategory) {
	if err == nil {
		return "", ""
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown failure"
	}
	switch {
	case errors.Is(err, ErrQueryTooLarge):
		return msg, FailureCategoryQueryTooLarge
	case errors.Is(err, ErrEmptyResponse):
		return msg, FailureCategoryEmpty
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout: " + msg, FailureCategoryTimeout
	default:
		return msg, FailureCategoryError
	}
}
