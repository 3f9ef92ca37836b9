package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/game"
	"github.com/nickmafra/sym-balls/internal/generator"
	"github.com/nickmafra/sym-balls/internal/infrastructure/storage"
	"github.com/nickmafra/sym-balls/internal/solver"
	"github.com/nickmafra/sym-balls/internal/usecase"
	"github.com/nickmafra/sym-balls/internal/validator"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// classify maps engine errors onto a status and a stable code.
func classify(err error) (int, string) {
	var (
		se *assembler.SchemaError
		fe *validator.FieldError
		im *game.InvalidMoveError
		pv *game.PolicyViolation
	)
	switch {
	case errors.As(err, &se), errors.As(err, &fe):
		return http.StatusUnprocessableEntity, "INVALID_LEVEL"
	case errors.As(err, &im):
		return http.StatusBadRequest, "INVALID_MOVE"
	case errors.As(err, &pv):
		return http.StatusForbidden, "POLICY_VIOLATION"
	case errors.Is(err, game.ErrSolved):
		return http.StatusConflict, "ALREADY_SOLVED"
	case errors.Is(err, usecase.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "LEVEL_NOT_FOUND"
	case errors.Is(err, storage.ErrReadOnly):
		return http.StatusForbidden, "READ_ONLY"
	case errors.Is(err, generator.ErrNoGenerators), errors.Is(err, solver.ErrNoSolution):
		return http.StatusUnprocessableEntity, "UNSOLVABLE"
	case errors.Is(err, solver.ErrBudgetExceeded), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "SEARCH_LIMIT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
