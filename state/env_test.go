package state

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ftc/config"
	"ftc/geometry"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	if ctx == nil {
		t.Fatal("ContextWithEnv() returned nil")
	}

	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
}

func TestEnvFromContext(t *testing.T) {
	t.Run("valid context", func(t *testing.T) {
		ctx := ContextWithEnv(context.Background())
		if EnvFromContext(ctx) == nil {
			t.Error("Expected non-nil environment")
		}
	})

	t.Run("panic on missing env", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic when env not in context")
			}
		}()
		EnvFromContext(context.Background())
	})
}

func TestLocalEnv_Uptime(t *testing.T) {
	env := EnvFromContext(ContextWithEnv(context.Background()))

	time.Sleep(10 * time.Millisecond)
	uptime := env.Uptime()

	if uptime < 10*time.Millisecond {
		t.Errorf("Uptime() = %v, expected at least 10ms", uptime)
	}
	if uptime > 1*time.Second {
		t.Errorf("Uptime() = %v, unexpectedly large", uptime)
	}
}

func TestLocalEnv_RedirectStdLog(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		env := &LocalEnv{
			Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		}

		env.RedirectStdLog()
		if env.restoreStdLog == nil {
			t.Error("Expected restoreStdLog to be set")
		}
		env.RestoreStdLog()
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}

		// Should not panic
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_NewDocument(t *testing.T) {
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env := &LocalEnv{
		Cfg: cfg,
		Log: zaptest.NewLogger(t),
	}

	size := cfg.Document.PageSize()
	doc, err := env.NewDocument("", []geometry.PageSize{size, size})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if doc.Name() != cfg.Document.Name {
		t.Errorf("Name() = %q, want configured %q", doc.Name(), cfg.Document.Name)
	}
	if doc.Pages() != 2 {
		t.Errorf("Pages() = %d, want 2", doc.Pages())
	}

	// configured estimator is wired as oracle
	b, err := cfg.Document.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	ref, err := doc.CreateFrame(0, b)
	if err != nil {
		t.Fatalf("CreateFrame() error = %v", err)
	}
	if _, err := doc.DetectOverflow(ref.Loc); err != nil {
		t.Errorf("DetectOverflow() error = %v", err)
	}

	named, err := env.NewDocument("Other", []geometry.PageSize{size})
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	if named.Name() != "Other" {
		t.Errorf("Name() = %q, want Other", named.Name())
	}
	if named.ID() == doc.ID() {
		t.Error("documents share ID")
	}
}

func TestLocalEnv_NewDocumentNoConfig(t *testing.T) {
	env := &LocalEnv{}
	if _, err := env.NewDocument("x", nil); err == nil {
		t.Error("expected error without configuration")
	}
}
