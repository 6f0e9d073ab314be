// Package app wires configuration, the word store, the lookup client and
// the player into the trainer's commands.
package app

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/palemoky/tonetrainer/internal/config"
	"github.com/palemoky/tonetrainer/internal/database"
	apperrors "github.com/palemoky/tonetrainer/internal/errors"
	"github.com/palemoky/tonetrainer/internal/forvo"
	"github.com/palemoky/tonetrainer/internal/logger"
	"github.com/palemoky/tonetrainer/internal/player"
	"github.com/palemoky/tonetrainer/internal/quiz"
	"github.com/palemoky/tonetrainer/internal/settings"
)

// App holds what every command needs. The function fields default to the
// real implementations and are replaced in tests.
type App struct {
	Config *config.Config
	In     io.Reader
	Out    io.Writer

	OpenStore func(path string) (*database.DB, error)
	NewPlayer func(cfg config.PlayerConfig) player.Player
	NewLookup func(cfg config.ForvoConfig, apiKey string) quiz.Lookup
}

// New creates an App bound to the given streams.
func New(cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		Config:    cfg,
		In:        in,
		Out:       out,
		OpenStore: database.Open,
		NewPlayer: func(pc config.PlayerConfig) player.Player {
			return player.NewCommandPlayer(pc.Command, pc.Args, pc.PostPlayDelay)
		},
		NewLookup: func(fc config.ForvoConfig, apiKey string) quiz.Lookup {
			return NewForvoClient(fc, apiKey)
		},
	}
}

// NewForvoClient builds a lookup client from configuration.
func NewForvoClient(fc config.ForvoConfig, apiKey string) *forvo.Client {
	return forvo.NewClient(fc.Endpoint, apiKey,
		forvo.WithLanguage(fc.Language),
		forvo.WithMode(forvo.Mode(fc.Mode)),
		forvo.WithOrder(fc.Order),
		forvo.WithTimeout(fc.Timeout),
		forvo.WithRateLimit(fc.RequestsPerSecond, fc.Burst),
	)
}

// openStore opens the word database, classifying failures.
func (a *App) openStore() (*database.DB, error) {
	db, err := a.OpenStore(a.Config.Database.Path)
	if err != nil {
		return nil, apperrors.Config("failed to open word database", err)
	}
	logger.Debug("Word database opened", zap.String("path", a.Config.Database.Path))
	return db, nil
}

// lookupDeps loads the API key and exclusion list and builds the lookup.
func (a *App) lookupDeps() (quiz.Lookup, *forvo.ExclusionList, error) {
	key, err := a.Config.APIKey()
	if err != nil {
		return nil, nil, apperrors.Config("failed to load api key", err)
	}

	excluded, err := forvo.LoadExclusionList(a.Config.Files.ExclusionList)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Exclusion list loaded", zap.Int("contributors", excluded.Len()))

	return a.NewLookup(a.Config.Forvo, key), excluded, nil
}

// Quiz runs the interactive trainer. With menu set, the welcome menu is
// shown first and may change the character form or quit right away.
// The store handle is closed on every return path.
func (a *App) Quiz(ctx context.Context, menu bool) (err error) {
	console := quiz.NewConsole(a.In, a.Out)

	// Fail on unreadable key or list files before asking anything.
	lookup, excluded, err := a.lookupDeps()
	if err != nil {
		return err
	}

	if menu {
		start, err := quiz.RunMenu(ctx, console, func(lang database.Lang) error {
			return settings.Save(a.Config.Files.Settings, lang)
		})
		if err != nil {
			return err
		}
		if !start {
			return nil
		}
	}

	lang, err := settings.Load(a.Config.Files.Settings)
	if err != nil {
		return err
	}

	db, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = apperrors.Store("failed to close word database", cerr)
		}
	}()

	repo := database.NewRepository(db)
	resolver := quiz.NewResolver(repo, lookup, excluded)
	session := quiz.NewSession(resolver, repo, a.NewPlayer(a.Config.Player), lang, console)

	logger.Info("Quiz started", zap.String("form", string(lang)))
	return session.Run(ctx)
}
