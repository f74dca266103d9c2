package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ftc/misc"
)

func TestDumpConfig(t *testing.T) {
	ctx := estimateEnv(t)

	t.Run("default to writer", func(t *testing.T) {
		var out bytes.Buffer
		cmd := dumpConfigCommand()
		cmd.Writer = &out
		if err := cmd.Run(ctx, []string{"dumpconfig", "--default"}); err != nil {
			t.Fatalf("dumpconfig error = %v", err)
		}
		if !strings.Contains(out.String(), "version: 1") {
			t.Errorf("default configuration misses version:\n%s", out.String())
		}
	})

	t.Run("actual to file", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "actual.yaml")
		if err := dumpConfigCommand().Run(ctx, []string{"dumpconfig", dst}); err != nil {
			t.Fatalf("dumpconfig error = %v", err)
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "on_thread_failure: keep") {
			t.Errorf("actual configuration misses thread failure policy:\n%s", data)
		}
	})
}

func TestRemoveEmptyPanicLog(t *testing.T) {
	dir := t.TempDir()
	logDest := filepath.Join(dir, "ftc.log")
	panicLog := filepath.Join(dir, misc.GetAppName()+"-panic.log")

	if err := os.WriteFile(panicLog, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(logDest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); !os.IsNotExist(err) {
		t.Errorf("empty panic log still exists")
	}

	if err := os.WriteFile(panicLog, []byte("panic: boom"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := removeEmptyPanicLog(logDest); err != nil {
		t.Fatalf("removeEmptyPanicLog() error = %v", err)
	}
	if _, err := os.Stat(panicLog); err != nil {
		t.Errorf("non empty panic log was removed: %v", err)
	}

	if err := removeEmptyPanicLog(""); err != nil {
		t.Errorf("removeEmptyPanicLog(\"\") error = %v", err)
	}
}

func TestNewApp(t *testing.T) {
	app := newApp()
	want := map[string]bool{"run": false, "estimate": false, "dumpconfig": false}
	for _, c := range app.Commands {
		if _, ok := want[c.Name]; ok {
			want[c.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q is not registered", name)
		}
	}
}
