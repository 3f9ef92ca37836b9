package domain

import "strings"

// Difficulty labels levels and scramble depth.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// Status is the play state of a puzzle.
type Status int

const (
	StatusInitial Status = iota // constructed or reset, nothing applied yet
	StatusReady                 // at least one move applied, goal not reached
	StatusSolved                // a move landed on the goal; terminal until reset
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusReady:
		return "ready"
	case StatusSolved:
		return "solved"
	default:
		return "unknown"
	}
}
