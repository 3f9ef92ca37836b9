package domain

import "slices"

// Cycle is an ordered rotation of positions: the item at Cycle[i] moves to
// Cycle[i+1] and the last one wraps to Cycle[0].
type Cycle []int

// Permutation maps a source position (index) to a destination position (value).
type Permutation []int

// ItemID identifies a labeled item. Canonical labeling puts item i at position i.
type ItemID int

// Arrangement holds the item sitting at each position.
type Arrangement []ItemID

// CanonicalArrangement returns the identity labeling of the given length.
func CanonicalArrangement(length int) Arrangement {
	a := make(Arrangement, length)
	for i := range a {
		a[i] = ItemID(i)
	}
	return a
}

// Move is a named permutation the player can apply as one action.
type Move struct {
	Name string      `json:"name"`
	Perm Permutation `json:"perm"`
}

// PolicyFlags restrict what the player may do besides applying moves.
type PolicyFlags struct {
	LockInitialItems   bool `json:"lockInitialItems"`
	AllowedDeletion    bool `json:"allowedDeletion"`
	AllowedDuplication bool `json:"allowedDuplication"`
	AllowedInversion   bool `json:"allowedInversion"`
}

// LevelSchema is the raw level definition as supplied by a level store.
// Move strings use cycle notation, e.g. "(0,1,2)(3 4)".
type LevelSchema struct {
	Length        int      `json:"length" yaml:"length" validate:"gt=0,lte=4096"`
	InitialItems  []string `json:"initialItems,omitempty" yaml:"initialItems,omitempty"`
	GeneratingSet []string `json:"generatingSet,omitempty" yaml:"generatingSet,omitempty"`
	Goal          []string `json:"goal,omitempty" yaml:"goal,omitempty"`
	MoveNames     []string `json:"moveNames,omitempty" yaml:"moveNames,omitempty" validate:"omitempty,dive,max=32"`
}

// Level is a persisted schema with catalog metadata.
type Level struct {
	ID          string     `json:"id" yaml:"id" validate:"required,max=64,levelid"`
	Title       string     `json:"title,omitempty" yaml:"title,omitempty" validate:"max=120"`
	Difficulty  Difficulty `json:"difficulty" yaml:"difficulty" validate:"gte=0,lte=3"`
	CreatedAt   int64      `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	LevelSchema `yaml:",inline"`
}

// Clone returns a copy of l that shares no slices with it.
func (l *Level) Clone() *Level {
	out := *l
	out.InitialItems = slices.Clone(l.InitialItems)
	out.GeneratingSet = slices.Clone(l.GeneratingSet)
	out.Goal = slices.Clone(l.Goal)
	out.MoveNames = slices.Clone(l.MoveNames)
	return &out
}

// LevelMeta is a lightweight listing entry.
type LevelMeta struct {
	ID         string     `json:"id"`
	Title      string     `json:"title,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Length     int        `json:"length"`
	Moves      int        `json:"moves"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Meta summarizes a level for catalog listings.
func (l *Level) Meta() LevelMeta {
	return LevelMeta{
		ID:         l.ID,
		Title:      l.Title,
		Difficulty: l.Difficulty,
		Length:     l.Length,
		Moves:      len(l.GeneratingSet),
		CreatedAt:  l.CreatedAt,
	}
}

// PuzzleConfig is a fully assembled puzzle. It is immutable once built.
type PuzzleConfig struct {
	Length     int
	Initial    Permutation
	Goal       Permutation
	Generators []Move
	Policy     PolicyFlags
}

// Hint describes a suggested next move.
type Hint struct {
	Message   string `json:"message,omitempty"`
	MoveIndex int    `json:"moveIndex"`
	Remaining int    `json:"remaining"`
}
