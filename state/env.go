// Package state defines shared program state.
package state

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ftc/config"
	"ftc/frames"
	"ftc/geometry"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by run subcommand
	Overwrite bool

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, &LocalEnv{start: time.Now()})
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}

// NewDocument creates document with pages of requested sizes, wired to
// program logger and measuring oracle from configuration. When name is empty
// configured default is used.
func (e *LocalEnv) NewDocument(name string, sizes []geometry.PageSize) (*frames.Document, error) {
	if e.Cfg == nil {
		return nil, fmt.Errorf("configuration is not loaded")
	}
	if len(name) == 0 {
		name = e.Cfg.Document.Name
	}
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	return frames.New(sizes,
		frames.WithName(name),
		frames.WithLogger(log),
		frames.WithOracle(e.Cfg.Measure.Estimator()),
	)
}
