package magick

import (
	"context"
	"errors"
	"testing"
)

type fakeToolRunner struct {
	calls  [][]string
	stderr string
	err    error
}

func (f *fakeToolRunner) Run(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.stderr, f.err
}

func assertArgs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("argv = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("argv[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRasterize(t *testing.T) {
	runner := &fakeToolRunner{}
	conv := NewConverter(WithRunner(runner))

	err := conv.Rasterize(context.Background(), "svg/logo.svg", 48, "tmp/logo-2.png")
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(runner.calls))
	}
	assertArgs(t, runner.calls[0], []string{
		"-background", "transparent",
		"svg/logo.svg",
		"-resize", "48x48",
		"tmp/logo-2.png",
	})
}

func TestRasterize_Failure(t *testing.T) {
	runner := &fakeToolRunner{
		stderr: "unable to open image",
		err:    errors.New("exit status 1"),
	}
	conv := NewConverter(WithRunner(runner))

	err := conv.Rasterize(context.Background(), "svg/logo.svg", 16, "tmp/logo-0.png")
	if err == nil {
		t.Fatal("expected error")
	}

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *ToolError, got %T", err)
	}
	if toolErr.Stage != StageRasterize {
		t.Errorf("Stage = %q, want %q", toolErr.Stage, StageRasterize)
	}
	if toolErr.Source != "svg/logo.svg" {
		t.Errorf("Source = %q, want %q", toolErr.Source, "svg/logo.svg")
	}
	if toolErr.Stderr != "unable to open image" {
		t.Errorf("Stderr = %q, want tool output", toolErr.Stderr)
	}
}

func TestPack(t *testing.T) {
	runner := &fakeToolRunner{}
	conv := NewConverter(WithRunner(runner))

	rasters := []string{"tmp/logo-0.png", "tmp/logo-1.png", "tmp/logo-2.png"}
	err := conv.Pack(context.Background(), rasters, "ico/logo.ico")
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	assertArgs(t, runner.calls[0], []string{
		"-background", "transparent",
		"tmp/logo-0.png", "tmp/logo-1.png", "tmp/logo-2.png",
		"ico/logo.ico",
	})
}

func TestPack_NoInputs(t *testing.T) {
	runner := &fakeToolRunner{}
	conv := NewConverter(WithRunner(runner))

	err := conv.Pack(context.Background(), nil, "ico/logo.ico")
	if !errors.Is(err, ErrNoRasters) {
		t.Fatalf("err = %v, want ErrNoRasters", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("tool invoked %d times for empty input", len(runner.calls))
	}
}

func TestPack_Failure(t *testing.T) {
	runner := &fakeToolRunner{err: errors.New("exit status 1")}
	conv := NewConverter(WithRunner(runner))

	err := conv.Pack(context.Background(), []string{"tmp/logo-0.png"}, "ico/logo.ico")

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("expected *ToolError, got %T", err)
	}
	if toolErr.Stage != StagePack {
		t.Errorf("Stage = %q, want %q", toolErr.Stage, StagePack)
	}
	if toolErr.Source != "ico/logo.ico" {
		t.Errorf("Source = %q, want %q", toolErr.Source, "ico/logo.ico")
	}
}
