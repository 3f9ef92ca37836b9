package main

import (
	"errors"
	"log/slog"

	"github.com/nickmafra/sym-balls/internal/config"
	"github.com/nickmafra/sym-balls/internal/generator"
	"github.com/nickmafra/sym-balls/internal/hint"
	"github.com/nickmafra/sym-balls/internal/infrastructure/cache"
	"github.com/nickmafra/sym-balls/internal/infrastructure/storage"
	"github.com/nickmafra/sym-balls/internal/ports"
	"github.com/nickmafra/sym-balls/internal/solver"
	"github.com/nickmafra/sym-balls/internal/usecase"
	"github.com/nickmafra/sym-balls/internal/validator"
	"github.com/nickmafra/sym-balls/levels"
)

// app owns everything a command needs; Close releases it in reverse order.
type app struct {
	store   ports.LevelStore
	levels  *cache.Levels
	solver  *solver.BFSSolver
	hinter  *hint.NextMove
	service *usecase.Service
	closers []func() error
}

// newApp wires providers -> use cases. Saves go to badger when configured,
// else to the levels directory; built-in levels are always read last.
func newApp(c config.Config, logger *slog.Logger) (*app, error) {
	v, err := validator.New()
	if err != nil {
		return nil, err
	}
	a := &app{}
	var stores []ports.LevelStore
	if c.Store.InMemory || c.Store.Path != "" {
		bc := storage.DefaultBadgerConfig(c.Store.Path)
		if c.Store.InMemory {
			bc = storage.InMemoryBadgerConfig()
		}
		bc.Logger = logger.With("component", "badger")
		db, err := storage.OpenBadger(bc)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		stores = append(stores, db)
	}
	if c.Levels.Dir != "" {
		stores = append(stores, storage.NewFS(c.Levels.Dir))
	}
	stores = append(stores, storage.NewReadOnlyFS(levels.FS()))

	a.store = storage.NewChain(stores...)
	a.levels = cache.NewLevels(a.store)
	a.closers = append(a.closers, a.levels.Close)
	a.solver = solver.NewBFSSolver(c.Solver.MaxNodes)
	a.hinter = hint.NewNextMove(a.solver)
	a.service = usecase.NewService(a.store, a.levels, a.solver, generator.NewScrambler(a.solver),
		v, a.hinter, usecase.Options{MaxSessions: c.Sessions.Max, Logger: logger})
	a.closers = append(a.closers, a.service.Close)
	return a, nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
