package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
)

// ErrNilLevel indicates Validate was called without a level.
var ErrNilLevel = errors.New("validator: nil level")

// LevelValidator checks level metadata with struct tags and then assembles the
// schema once so broken notation never reaches a store.
type LevelValidator struct {
	v *playground.Validate
}

func New() (*LevelValidator, error) {
	v := playground.New()
	if err := v.RegisterValidation("levelid", validateLevelID); err != nil {
		return nil, fmt.Errorf("validator: register levelid: %w", err)
	}
	return &LevelValidator{v: v}, nil
}

func (lv *LevelValidator) Validate(ctx context.Context, l *domain.Level) error {
	_, err := lv.Check(ctx, l)
	return err
}

// Check validates l and returns the configuration of its trial assembly.
func (lv *LevelValidator) Check(ctx context.Context, l *domain.Level) (*domain.PuzzleConfig, error) {
	if l == nil {
		return nil, ErrNilLevel
	}
	if err := lv.v.StructCtx(ctx, l); err != nil {
		var verrs playground.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fieldErrors(verrs)
		}
		return nil, err
	}
	if len(l.MoveNames) > len(l.GeneratingSet) {
		return nil, &FieldError{Field: "moveNames", Rule: "max", Param: fmt.Sprint(len(l.GeneratingSet))}
	}
	return assembler.Assemble(l.LevelSchema)
}

// FieldError is a single failed metadata rule.
type FieldError struct {
	Field string
	Rule  string
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("validator: %s fails %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("validator: %s fails %s", e.Field, e.Rule)
}

// fieldErrors reports the first failed rule; the rest usually repeat it.
func fieldErrors(verrs playground.ValidationErrors) error {
	fe := verrs[0]
	return &FieldError{Field: fe.Namespace(), Rule: fe.Tag(), Param: fe.Param()}
}

// validateLevelID accepts lowercase ASCII letters, digits, '-' and '_'.
func validateLevelID(fl playground.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" {
		return false
	}
	return strings.IndexFunc(id, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_')
	}) < 0
}
