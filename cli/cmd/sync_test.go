package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/anotherempty/env-sync/merge"
)

func TestSync_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local := writeFile(t, dir, ".env", "KEY=secret\nGONE=1")
	template := writeFile(t, dir, ".env.template", "KEY=\nNEW=default")

	sync := &Sync{Local: local, Template: template}

	if err := sync.Run(context.Background()); err != nil {
		t.Fatalf("run error: %v", err)
	}

	want := "KEY=secret\nNEW=default\n"
	if got := readFile(t, local); got != want {
		t.Errorf("local file = %q, want %q", got, want)
	}
}

func TestSync_RunDryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local := writeFile(t, dir, ".env", "KEY=secret")
	template := writeFile(t, dir, ".env.template", "KEY=\nNEW=")

	var out bytes.Buffer

	sync := &Sync{Local: local, Template: template, DryRun: true}

	err := sync.Run(withStdout(context.Background(), &out))
	if err != nil {
		t.Fatalf("run error: %v", err)
	}

	if want := "KEY=secret\nNEW=\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	if got := readFile(t, local); got != "KEY=secret" {
		t.Errorf("local file modified by dry run: %q", got)
	}
}

func TestSync_RunTemplateMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local := writeFile(t, dir, ".env", "KEY=1")

	sync := &Sync{Local: local, Template: dir + "/nonexistent"}

	err := sync.Run(context.Background())
	if !errors.Is(err, merge.ErrTemplateMissing) {
		t.Errorf("expected ErrTemplateMissing, got %v", err)
	}
}
