package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/workout"
)

func TestRunTimer(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t, timer.WithInterval(time.Millisecond))
	list, _ := deps.Services.Workouts.Open("Workout")
	_, _ = list.Add("Hold", "3", workout.Seconds)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	RunTimer(ctx, deps, "Workout", "5")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	for _, want := range []string{"Timer: Hold (3s)", "2s remaining", "1s remaining", "Done: Hold"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
	if deps.Services.Timer.Session().Active() {
		t.Error("expected idle timer after completion")
	}
}

func TestRunTimer_Cancelled(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	RunTimer(ctx, deps, "Workout", "1")

	if !strings.Contains(stdout.String(), "Stopped: Jumping jacks") {
		t.Errorf("expected 'Stopped: Jumping jacks', got %q", stdout.String())
	}
	if deps.Services.Timer.Session().Active() {
		t.Error("expected timer to be stopped")
	}
}

func TestRunTimer_NotTimed(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	RunTimer(context.Background(), deps, "Workout", "2")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Push-ups is counted in reps") {
		t.Errorf("expected reps error, got %q", stderr.String())
	}
}

func TestRunTimer_InvalidIndex(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	RunTimer(context.Background(), deps, "Workout", "12")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid exercise index") {
		t.Errorf("expected index error, got %q", stderr.String())
	}
}
