package handlers

import (
	"slices"
	"strings"
	"testing"

	"github.com/xolan/wl/internal/workout"
)

func entryLabels(t *testing.T, list *workout.List) []string {
	t.Helper()
	var out []string
	for _, e := range list.Entries() {
		out = append(out, e.Label)
	}
	return out
}

func TestAddEntry(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	_ = deps.Services.Workouts.Add("Arms")

	AddEntry(deps, "Arms", "Curls", "12", workout.Reps)
	AddEntry(deps, "Arms", "Hang", "30", workout.Seconds)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Added to Arms: Curls (12 reps)") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "Added to Arms: Hang (30s)") {
		t.Errorf("unexpected output %q", stdout.String())
	}

	list, _ := deps.Services.Workouts.Open("Arms")
	entries := list.Entries()
	if len(entries) != 2 || entries[1].Kind != workout.Seconds {
		t.Errorf("Entries() = %+v, expected Curls then timed Hang", entries)
	}
}

func TestAddEntry_EmptyField(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	AddEntry(deps, "Workout", "", "12", workout.Reps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "cannot be empty") {
		t.Errorf("expected empty field error, got %q", stderr.String())
	}
}

func TestAddEntry_UnknownWorkout(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	AddEntry(deps, "Nope", "Curls", "12", workout.Reps)

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "not found") {
		t.Errorf("expected not found error, got %q", stderr.String())
	}
}

func TestEditEntry(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	value := "20"
	EditEntry(deps, "Workout", "2", nil, &value)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Updated exercise 2: Push-ups (20 reps)") {
		t.Errorf("unexpected output %q", stdout.String())
	}
}

func TestEditEntry_Errors(t *testing.T) {
	empty := ""
	label := "Dips"

	tests := []struct {
		name        string
		index       string
		label       *string
		value       *string
		expectedErr string
	}{
		{"no flags", "1", nil, nil, "At least one flag"},
		{"bad index", "9", &label, nil, "Invalid exercise index"},
		{"empty label", "1", &empty, nil, "cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, stderr, exitCode := setupTestDeps(t)

			EditEntry(deps, "Workout", tt.index, tt.label, tt.value)

			if *exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", *exitCode)
			}
			if !strings.Contains(stderr.String(), tt.expectedErr) {
				t.Errorf("expected %q in stderr, got %q", tt.expectedErr, stderr.String())
			}
		})
	}
}

func TestRemoveEntry(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	RemoveEntry(deps, "Workout", "1")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Deleted: Jumping jacks") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	list, _ := deps.Services.Workouts.Open("Workout")
	if got := entryLabels(t, list); !slices.Equal(got, []string{"Push-ups", "Squats", "Plank"}) {
		t.Errorf("labels = %v, expected [Push-ups Squats Plank]", got)
	}
}

func TestMoveEntry(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)

	MoveEntry(deps, "Workout", "4", "1")

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Moved Plank to position 1") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	list, _ := deps.Services.Workouts.Open("Workout")
	if got := entryLabels(t, list); !slices.Equal(got, []string{"Plank", "Jumping jacks", "Push-ups", "Squats"}) {
		t.Errorf("labels = %v, expected Plank first", got)
	}
}

func TestMoveEntry_InvalidIndex(t *testing.T) {
	deps, _, stderr, exitCode := setupTestDeps(t)

	MoveEntry(deps, "Workout", "1", "7")

	if *exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Invalid target index") {
		t.Errorf("expected target index error, got %q", stderr.String())
	}
}

func TestResetWorkout(t *testing.T) {
	deps, stdout, _, exitCode := setupTestDeps(t)
	list, _ := deps.Services.Workouts.Open("Workout")
	original := list.Entries()
	_, _ = list.Add("Burpees", "10", workout.Reps)
	_ = list.Delete(0)

	ResetWorkout(deps, "Workout", true)

	if *exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *exitCode)
	}
	if !strings.Contains(stdout.String(), "Reset Workout: 4 exercises") {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if !slices.Equal(list.Entries(), original) {
		t.Errorf("Entries() = %+v, expected template %+v", list.Entries(), original)
	}
	if list.Editing() {
		t.Error("expected editing mode to be left after reset")
	}
}

func TestResetWorkout_Declined(t *testing.T) {
	deps, stdout, _, _ := setupTestDeps(t)
	deps.Stdin = strings.NewReader("no\n")
	list, _ := deps.Services.Workouts.Open("Workout")
	_ = list.Delete(0)

	ResetWorkout(deps, "Workout", false)

	if !strings.Contains(stdout.String(), "Reset cancelled") {
		t.Errorf("expected 'Reset cancelled', got %q", stdout.String())
	}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", list.Len())
	}
}
