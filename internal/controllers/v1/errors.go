package v1

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/ledger/internal/ledger"
	"github.com/envelope-zero/ledger/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) ||
		errors.Is(err, ledger.ErrCategoryNotFound) ||
		errors.Is(err, ledger.ErrGroupNotFound) ||
		errors.Is(err, ledger.ErrMonthNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrReassignmentRequired) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errBudgetIDParameter = errors.New("the budget parameter must be set")
	errMonthParameter    = errors.New("the month parameter must be set in YYYY-MM format")
	errDirectionInvalid  = errors.New("the direction must be one of 'forward' or 'backward'")
	errGroupNotSet       = errors.New("the group must be set")
	errCategoryNotSet    = errors.New("the category must be set")
)
