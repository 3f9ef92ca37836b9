// Package usecase wires the engine to level storage and hosts play sessions.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/ports"
	"github.com/nickmafra/sym-balls/internal/telemetry"
)

// DefaultMaxSessions bounds the session registry when Options leaves it unset.
const DefaultMaxSessions = 1024

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Store     ports.LevelStore
	Levels    ports.LevelCache

	logger      *slog.Logger
	tracer      trace.Tracer
	maxSessions int

	mu       sync.Mutex
	sessions map[string]*session
	clock    uint64
}

type Options struct {
	MaxSessions int
	Logger      *slog.Logger
}

func NewService(st ports.LevelStore, lc ports.LevelCache, s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, opts Options) *Service {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{
		Solver:      s,
		Generator:   g,
		Validator:   v,
		Hinter:      h,
		Store:       st,
		Levels:      lc,
		logger:      opts.Logger,
		tracer:      telemetry.Tracer(),
		maxSessions: opts.MaxSessions,
		sessions:    make(map[string]*session),
	}
}

var (
	errNotConfigured = errors.New("usecase dependency not configured")
	errNilLevel      = errors.New("usecase: nil level")
)

func (u *Service) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return u.tracer.Start(ctx, "usecase."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Levels

func (u *Service) ListLevels(ctx context.Context) ([]domain.LevelMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}

// LoadLevel returns a copy of the stored level.
func (u *Service) LoadLevel(ctx context.Context, id string) (*domain.Level, error) {
	if u.Levels == nil {
		return nil, errNotConfigured
	}
	l, _, err := u.Levels.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

// SaveLevel validates a level, including a trial assembly, and stores it.
func (u *Service) SaveLevel(ctx context.Context, l *domain.Level) (err error) {
	ctx, span := u.start(ctx, "SaveLevel")
	defer func() { endSpan(span, err) }()
	if u.Store == nil || u.Validator == nil {
		return errNotConfigured
	}
	if l == nil {
		return errNilLevel
	}
	span.SetAttributes(attribute.String("level.id", l.ID))
	if err := u.Validator.Validate(ctx, l); err != nil {
		return err
	}
	if err := u.Store.Save(ctx, l); err != nil {
		return err
	}
	if u.Levels != nil {
		u.Levels.Invalidate(l.ID)
	}
	u.logger.Info("level saved", "level", l.ID, "length", l.Length, "moves", len(l.GeneratingSet))
	return nil
}

// Scramble derives a new level from baseID. With save set the result is stored.
func (u *Service) Scramble(ctx context.Context, baseID string, seed int64, d domain.Difficulty, save bool) (l *domain.Level, st ports.Stats, err error) {
	ctx, span := u.start(ctx, "Scramble",
		attribute.String("level.id", baseID),
		attribute.Int64("seed", seed),
		attribute.String("difficulty", d.String()))
	defer func() { endSpan(span, err) }()
	if u.Generator == nil || u.Levels == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	base, _, err := u.Levels.Get(ctx, baseID)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	l, st, err = u.Generator.Generate(ctx, base, seed, d)
	if err != nil {
		return nil, st, err
	}
	if save {
		if err := u.SaveLevel(ctx, l); err != nil {
			return nil, st, err
		}
	}
	return l, st, nil
}

// Close ends every session.
func (u *Service) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := len(u.sessions)
	u.sessions = make(map[string]*session)
	telemetry.SessionsActive.Set(0)
	if n > 0 {
		u.logger.Info("sessions closed", "count", n)
	}
	return nil
}
