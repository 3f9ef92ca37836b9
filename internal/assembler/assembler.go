// Package assembler turns raw level schemas into puzzle configurations.
package assembler

import (
	"errors"
	"fmt"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/notation"
	"github.com/nickmafra/sym-balls/internal/permutation"
)

// ErrMissingLength indicates a schema without a positive length.
var ErrMissingLength = errors.New("assembler: length must be a positive integer")

// SchemaError names the schema field that failed to assemble.
type SchemaError struct {
	Field string // "length", "initialItems[0]", "generatingSet[2]", …
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("assembler: %s: %v", e.Field, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Assemble parses every notation string of the schema and derives the policy.
// LockInitialItems is true exactly when the generating set is non-empty; the
// authoring flags stay false for schema-loaded puzzles.
func Assemble(schema domain.LevelSchema) (*domain.PuzzleConfig, error) {
	if schema.Length <= 0 {
		return nil, &SchemaError{Field: "length", Err: ErrMissingLength}
	}
	parse := newNotationParser(schema.Length)

	initial, err := composeAll(parse, "initialItems", schema.InitialItems, schema.Length)
	if err != nil {
		return nil, err
	}
	goal, err := composeAll(parse, "goal", schema.Goal, schema.Length)
	if err != nil {
		return nil, err
	}

	perms, err := parse("generatingSet", schema.GeneratingSet)
	if err != nil {
		return nil, err
	}
	generators := make([]domain.Move, len(perms))
	for i, p := range perms {
		generators[i] = domain.Move{Name: moveName(schema, i, p), Perm: p}
	}

	return &domain.PuzzleConfig{
		Length:     schema.Length,
		Initial:    initial,
		Goal:       goal,
		Generators: generators,
		Policy: domain.PolicyFlags{
			LockInitialItems: isFilled(perms),
		},
	}, nil
}

// ParseMove builds one permutation from notation, as used for authored moves.
func ParseMove(text string, length int) (domain.Permutation, error) {
	if length <= 0 {
		return nil, &SchemaError{Field: "length", Err: ErrMissingLength}
	}
	cycles, err := notation.NewParser(length).Parse(text)
	if err != nil {
		return nil, err
	}
	return permutation.Build(cycles, length)
}

type notationParser func(field string, texts []string) ([]domain.Permutation, error)

// newNotationParser returns a parser for string lists of one schema; a nil or
// empty list yields no permutations.
func newNotationParser(length int) notationParser {
	return func(field string, texts []string) ([]domain.Permutation, error) {
		out := make([]domain.Permutation, 0, len(texts))
		for i, text := range texts {
			p, err := ParseMove(text, length)
			if err != nil {
				return nil, &SchemaError{Field: fmt.Sprintf("%s[%d]", field, i), Err: err}
			}
			out = append(out, p)
		}
		return out, nil
	}
}

// composeAll folds the permutations of a field, in list order, over identity.
func composeAll(parse notationParser, field string, texts []string, length int) (domain.Permutation, error) {
	perms, err := parse(field, texts)
	if err != nil {
		return nil, err
	}
	acc := permutation.Identity(length)
	for i, p := range perms {
		acc, err = permutation.Compose(acc, p)
		if err != nil {
			return nil, &SchemaError{Field: fmt.Sprintf("%s[%d]", field, i), Err: err}
		}
	}
	return acc, nil
}

func moveName(schema domain.LevelSchema, i int, p domain.Permutation) string {
	if i < len(schema.MoveNames) && schema.MoveNames[i] != "" {
		return schema.MoveNames[i]
	}
	if name := notation.Format(permutation.Cycles(p)); name != "" {
		return name
	}
	return "()"
}

func isFilled(perms []domain.Permutation) bool { return len(perms) > 0 }
