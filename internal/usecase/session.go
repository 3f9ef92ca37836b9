package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/game"
	"github.com/nickmafra/sym-balls/internal/ports"
	"github.com/nickmafra/sym-balls/internal/telemetry"
)

// ErrSessionNotFound indicates an unknown or evicted session id.
var ErrSessionNotFound = errors.New("usecase: session not found")

type session struct {
	mu       sync.Mutex
	id       string
	levelID  string
	cfg      *domain.PuzzleConfig
	game     *game.Game
	started  time.Time
	lastUsed uint64
}

// SessionView is a point-in-time copy of one session.
type SessionView struct {
	ID          string             `json:"id"`
	LevelID     string             `json:"levelId"`
	Length      int                `json:"length"`
	Arrangement domain.Arrangement `json:"arrangement"`
	Goal        domain.Arrangement `json:"goal"`
	Moves       []domain.Move      `json:"moves"`
	History     []int              `json:"history"`
	MoveCount   int                `json:"moveCount"`
	Status      string             `json:"status"`
	Solved      bool               `json:"solved"`
	Policy      domain.PolicyFlags `json:"policy"`
	StartedAt   time.Time          `json:"startedAt"`
}

func (s *session) view() SessionView {
	return SessionView{
		ID:          s.id,
		LevelID:     s.levelID,
		Length:      s.game.Length(),
		Arrangement: s.game.Snapshot(),
		Goal:        s.game.Goal(),
		Moves:       s.game.Moves(),
		History:     s.game.History(),
		MoveCount:   s.game.MoveCount(),
		Status:      s.game.Status().String(),
		Solved:      s.game.IsSolved(),
		Policy:      s.game.Policy(),
		StartedAt:   s.started,
	}
}

// current builds the configuration the solver sees: the session goal with the
// moves as they are now, authored ones included.
func (s *session) current() *domain.PuzzleConfig {
	return &domain.PuzzleConfig{
		Length:     s.cfg.Length,
		Initial:    s.cfg.Initial,
		Goal:       s.cfg.Goal,
		Generators: s.game.Moves(),
		Policy:     s.game.Policy(),
	}
}

// StartSession activates a level as a new game. The least recently used
// session is evicted when the registry is full.
func (u *Service) StartSession(ctx context.Context, levelID string) (v SessionView, err error) {
	ctx, span := u.start(ctx, "StartSession", attribute.String("level.id", levelID))
	defer func() { endSpan(span, err) }()
	if u.Levels == nil {
		return SessionView{}, errNotConfigured
	}
	_, cfg, err := u.Levels.Get(ctx, levelID)
	if err != nil {
		return SessionView{}, err
	}
	g, err := game.New(cfg)
	if err != nil {
		return SessionView{}, err
	}
	s := &session{id: uuid.NewString(), levelID: levelID, cfg: cfg, game: g, started: time.Now().UTC()}

	u.mu.Lock()
	for len(u.sessions) >= u.maxSessions {
		u.evictLocked()
	}
	u.clock++
	s.lastUsed = u.clock
	u.sessions[s.id] = s
	telemetry.SessionsActive.Set(float64(len(u.sessions)))
	u.mu.Unlock()

	telemetry.SessionsStarted.Inc()
	span.SetAttributes(attribute.String("session.id", s.id))
	u.logger.Debug("session started", "session", s.id, "level", levelID)
	return s.view(), nil
}

func (u *Service) evictLocked() {
	var oldest *session
	for _, s := range u.sessions {
		if oldest == nil || s.lastUsed < oldest.lastUsed {
			oldest = s
		}
	}
	if oldest == nil {
		return
	}
	delete(u.sessions, oldest.id)
	u.logger.Info("session evicted", "session", oldest.id, "level", oldest.levelID)
}

func (u *Service) lookup(id string) (*session, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	u.clock++
	s.lastUsed = u.clock
	return s, nil
}

// with runs fn under the session lock and returns the resulting view.
func (u *Service) with(ctx context.Context, name, id string, fn func(s *session) error) (v SessionView, err error) {
	_, span := u.start(ctx, name, attribute.String("session.id", id))
	defer func() { endSpan(span, err) }()
	s, err := u.lookup(id)
	if err != nil {
		return SessionView{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s); err != nil {
		return SessionView{}, err
	}
	return s.view(), nil
}

// Session returns the current view of a session.
func (u *Service) Session(ctx context.Context, id string) (SessionView, error) {
	return u.with(ctx, "Session", id, func(*session) error { return nil })
}

// ApplyMove applies one move; the view reports whether it solved the puzzle.
func (u *Service) ApplyMove(ctx context.Context, id string, index int) (SessionView, error) {
	return u.with(ctx, "ApplyMove", id, func(s *session) error {
		if err := s.game.ApplyMove(index); err != nil {
			telemetry.MovesApplied.WithLabelValues("rejected").Inc()
			return err
		}
		telemetry.MovesApplied.WithLabelValues("ok").Inc()
		if s.game.Status() == domain.StatusSolved {
			telemetry.SessionsSolved.Inc()
			u.logger.Info("session solved", "session", s.id, "level", s.levelID, "moves", s.game.MoveCount())
		}
		return nil
	})
}

// ResetSession rebuilds the game from the level configuration, dropping
// authored moves.
func (u *Service) ResetSession(ctx context.Context, id string) (SessionView, error) {
	return u.with(ctx, "ResetSession", id, func(s *session) error {
		g, err := game.New(s.cfg)
		if err != nil {
			return err
		}
		s.game = g
		return nil
	})
}

// EndSession discards a session.
func (u *Service) EndSession(ctx context.Context, id string) (err error) {
	_, span := u.start(ctx, "EndSession", attribute.String("session.id", id))
	defer func() { endSpan(span, err) }()
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(u.sessions, id)
	telemetry.SessionsActive.Set(float64(len(u.sessions)))
	return nil
}

// AuthorMove parses notation and appends it as a new move.
func (u *Service) AuthorMove(ctx context.Context, id, name, text string) (SessionView, error) {
	return u.with(ctx, "AuthorMove", id, func(s *session) error {
		err := u.authorMove(s, name, text)
		countAuthoring(game.ActionAdd, err)
		return err
	})
}

func (u *Service) authorMove(s *session, name, text string) error {
	if err := s.game.CheckPolicy(game.ActionAdd); err != nil {
		return err
	}
	perm, err := assembler.ParseMove(text, s.game.Length())
	if err != nil {
		return &assembler.SchemaError{Field: "move", Err: err}
	}
	_, err = s.game.AddMove(name, perm)
	return err
}

func (u *Service) RemoveMove(ctx context.Context, id string, index int) (SessionView, error) {
	return u.with(ctx, "RemoveMove", id, func(s *session) error {
		err := s.game.RemoveMove(index)
		countAuthoring(game.ActionRemove, err)
		return err
	})
}

func (u *Service) DuplicateMove(ctx context.Context, id string, index int) (SessionView, error) {
	return u.with(ctx, "DuplicateMove", id, func(s *session) error {
		_, err := s.game.DuplicateMove(index)
		countAuthoring(game.ActionDuplicate, err)
		return err
	})
}

func (u *Service) InvertMove(ctx context.Context, id string, index int) (SessionView, error) {
	return u.with(ctx, "InvertMove", id, func(s *session) error {
		err := s.game.InvertMove(index)
		countAuthoring(game.ActionInvert, err)
		return err
	})
}

func countAuthoring(action game.Action, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "rejected"
	}
	telemetry.AuthoringActions.WithLabelValues(action.String(), outcome).Inc()
}

// Hint suggests the next move for a session. ok is false on the goal.
func (u *Service) Hint(ctx context.Context, id string) (h domain.Hint, ok bool, err error) {
	ctx, span := u.start(ctx, "Hint", attribute.String("session.id", id))
	defer func() { endSpan(span, err) }()
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	s, err := u.lookup(id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	s.mu.Lock()
	cfg, from := s.current(), s.game.Snapshot()
	s.mu.Unlock()

	start := time.Now()
	defer func() { telemetry.SolveDuration.Observe(time.Since(start).Seconds()) }()
	return u.Hinter.Hint(ctx, cfg, from)
}

// Solve returns a shortest sequence of move indices from the session's
// current arrangement to its goal.
func (u *Service) Solve(ctx context.Context, id string) (path []int, st ports.Stats, err error) {
	ctx, span := u.start(ctx, "Solve", attribute.String("session.id", id))
	defer func() { endSpan(span, err) }()
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	s, err := u.lookup(id)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	s.mu.Lock()
	cfg, from := s.current(), s.game.Snapshot()
	s.mu.Unlock()

	path, st, err = u.Solver.Solve(ctx, cfg, from)
	telemetry.SolveDuration.Observe(st.Duration.Seconds())
	span.SetAttributes(attribute.Int("solver.nodes", st.Nodes))
	return path, st, err
}

// SessionCount reports the number of live sessions.
func (u *Service) SessionCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.sessions)
}
