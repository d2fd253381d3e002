package handlers

import (
	"slices"
	"strings"
	"testing"
)

func TestListWorkouts(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	_ = deps.Services.Workouts.Add("Legs")

	ListWorkouts(deps)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	if !strings.Contains(output, "[1] Workout") {
		t.Errorf("expected '[1] Workout' in output, got %q", output)
	}
	if !strings.Contains(output, "[2] Legs") {
		t.Errorf("expected '[2] Legs' in output, got %q", output)
	}
}

func TestListWorkouts_Empty(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	_, _ = deps.Services.Workouts.Remove(0)

	ListWorkouts(deps)

	if !strings.Contains(stdout.String(), "No workouts yet") {
		t.Errorf("expected 'No workouts yet' in output, got %q", stdout.String())
	}
}

func TestAddWorkout(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		expectedExit int
		expectedErr  string
	}{
		{"new title", "Legs", 0, ""},
		{"trimmed", "  Core ", 0, ""},
		{"empty", "   ", 1, "cannot be empty"},
		{"duplicate", "Workout", 1, "already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, stderr, exitCode := setupTestDeps(t)

			AddWorkout(deps, tt.title)

			if *exitCode != tt.expectedExit {
				t.Errorf("expected exit code %d, got %d", tt.expectedExit, *exitCode)
			}
			if tt.expectedErr != "" {
				if !strings.Contains(stderr.String(), tt.expectedErr) {
					t.Errorf("expected %q in stderr, got %q", tt.expectedErr, stderr.String())
				}
				return
			}
			if !strings.Contains(stdout.String(), "Added workout: "+strings.TrimSpace(tt.title)) {
				t.Errorf("unexpected output %q", stdout.String())
			}
		})
	}
}

func TestRemoveWorkout(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	_ = deps.Services.Workouts.Add("Legs")

	RemoveWorkout(deps, "2", true)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Removed workout: Legs") {
		t.Errorf("expected removal message, got %q", stdout.String())
	}
	if got := deps.Services.Workouts.Titles(); !slices.Equal(got, []string{"Workout"}) {
		t.Errorf("Titles() = %v, expected [Workout]", got)
	}
}

func TestRemoveWorkout_Confirmation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		removed  bool
		expected string
	}{
		{"confirmed", "y\n", true, "Removed workout"},
		{"declined", "n\n", false, "Removal cancelled"},
		{"no input", "", false, "Removal cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, stdout, _, _ := setupTestDeps(t)
			deps.Stdin = strings.NewReader(tt.input)

			RemoveWorkout(deps, "1", false)

			if !strings.Contains(stdout.String(), tt.expected) {
				t.Errorf("expected %q in output, got %q", tt.expected, stdout.String())
			}
			if removed := deps.Services.Workouts.Collection().Len() == 0; removed != tt.removed {
				t.Errorf("removed = %v, expected %v", removed, tt.removed)
			}
		})
	}
}

func TestRemoveWorkout_InvalidIndex(t *testing.T) {
	for _, arg := range []string{"0", "5", "abc"} {
		t.Run(arg, func(t *testing.T) {
			deps, _, stderr, exitCode := setupTestDeps(t)

			RemoveWorkout(deps, arg, true)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), "Invalid workout index") {
				t.Errorf("expected index error, got %q", stderr.String())
			}
		})
	}
}

func TestShowWorkout(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	ShowWorkout(deps, "Workout")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	output := stdout.String()
	for _, want := range []string{"Workout:", "Jumping jacks", "Push-ups", "Secs", "Reps", "4 exercises"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got %q", want, output)
		}
	}
}

func TestShowWorkout_Empty(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	_ = deps.Services.Workouts.Add("Arms")

	ShowWorkout(deps, "Arms")

	if !strings.Contains(stdout.String(), "No exercises") {
		t.Errorf("expected 'No exercises' in output, got %q", stdout.String())
	}
}

func TestShowWorkout_Unknown(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	ShowWorkout(deps, "Nope")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), `Workout "Nope" not found`) {
		t.Errorf("expected not found error, got %q", stderr.String())
	}
}
