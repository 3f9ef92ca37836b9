package game

import (
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/notation"
	"github.com/nickmafra/sym-balls/internal/permutation"
)

// AddMove appends an authored move. Only puzzles without a locked generating
// set accept new moves. It returns the index of the new move.
func (g *Game) AddMove(name string, perm domain.Permutation) (int, error) {
	if err := g.CheckPolicy(ActionAdd); err != nil {
		return 0, err
	}
	if err := permutation.Validate(perm, g.length); err != nil {
		return 0, &InvalidMoveError{Index: len(g.moves), Count: len(g.moves), Reason: err.Error()}
	}
	m := domain.Move{Name: name, Perm: append(domain.Permutation(nil), perm...)}
	if m.Name == "" {
		m.Name = describe(m.Perm)
	}
	g.moves = append(g.moves, m)
	return len(g.moves) - 1, nil
}

// RemoveMove deletes a move. History keeps the indices as they were applied.
func (g *Game) RemoveMove(index int) error {
	if err := g.CheckPolicy(ActionRemove); err != nil {
		return err
	}
	if err := g.checkIndex(index); err != nil {
		return err
	}
	g.moves = append(g.moves[:index:index], g.moves[index+1:]...)
	return nil
}

// DuplicateMove appends a copy of a move and returns the copy's index.
func (g *Game) DuplicateMove(index int) (int, error) {
	if err := g.CheckPolicy(ActionDuplicate); err != nil {
		return 0, err
	}
	if err := g.checkIndex(index); err != nil {
		return 0, err
	}
	g.moves = append(g.moves, cloneMove(g.moves[index]))
	return len(g.moves) - 1, nil
}

// InvertMove replaces a move by its inverse in place.
func (g *Game) InvertMove(index int) error {
	if err := g.CheckPolicy(ActionInvert); err != nil {
		return err
	}
	if err := g.checkIndex(index); err != nil {
		return err
	}
	inv := permutation.Inverse(g.moves[index].Perm)
	g.moves[index] = domain.Move{Name: g.moves[index].Name + "'", Perm: inv}
	return nil
}

// Action is an authoring action guarded by a policy flag.
type Action int

const (
	ActionAdd Action = iota
	ActionRemove
	ActionDuplicate
	ActionInvert
)

func (a Action) String() string {
	if a < 0 || int(a) >= len(policyRules) {
		return "unknown"
	}
	return policyRules[a].name
}

// policyRules is indexed by Action.
var policyRules = [...]struct {
	name    string
	flag    string
	allowed func(domain.PolicyFlags) bool
}{
	ActionAdd:       {"add", "lockInitialItems", func(p domain.PolicyFlags) bool { return !p.LockInitialItems }},
	ActionRemove:    {"remove", "allowedDeletion", func(p domain.PolicyFlags) bool { return p.AllowedDeletion }},
	ActionDuplicate: {"duplicate", "allowedDuplication", func(p domain.PolicyFlags) bool { return p.AllowedDuplication }},
	ActionInvert:    {"invert", "allowedInversion", func(p domain.PolicyFlags) bool { return p.AllowedInversion }},
}

// CheckPolicy reports whether the policy permits an authoring action.
// Actions outside the enumeration are never permitted.
func (g *Game) CheckPolicy(action Action) error {
	if action < 0 || int(action) >= len(policyRules) {
		return &PolicyViolation{Action: action}
	}
	if r := policyRules[action]; !r.allowed(g.policy) {
		return &PolicyViolation{Action: action, Flag: r.flag}
	}
	return nil
}

func (g *Game) checkIndex(index int) error {
	if index < 0 || index >= len(g.moves) {
		return &InvalidMoveError{Index: index, Count: len(g.moves)}
	}
	return nil
}

func describe(p domain.Permutation) string {
	if s := notation.Format(permutation.Cycles(p)); s != "" {
		return s
	}
	return "()"
}
