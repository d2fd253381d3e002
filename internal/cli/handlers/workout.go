package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/workout"
)

// ListWorkouts prints the workout titles with their 1-based indices
func ListWorkouts(deps *cli.Deps) {
	titles := deps.Services.Workouts.Titles()
	if len(titles) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No workouts yet")
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Add one with 'wl add <title>'")
		return
	}

	width := cli.IndexWidth(len(titles))
	_, _ = fmt.Fprintln(deps.Stdout, "Workouts:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	for i, title := range titles {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %s\n", width, i+1, title)
	}
}

// AddWorkout adds a workout title
func AddWorkout(deps *cli.Deps, title string) {
	err := deps.Services.Workouts.Add(title)
	switch {
	case errors.Is(err, workout.ErrEmptyTitle):
		deps.Fail("Workout title cannot be empty", nil, "Usage: wl add <title>")
		return
	case errors.Is(err, workout.ErrDuplicateTitle):
		deps.Fail(fmt.Sprintf("Workout %q already exists", strings.TrimSpace(title)), nil, "List workouts with 'wl'")
		return
	case err != nil:
		deps.Fail("Failed to add workout", err, "")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added workout: %s\n", strings.TrimSpace(title))
}

// RemoveWorkout removes the workout at a 1-based index after confirmation.
// The workout's entries stay in storage and come back if the title is added again.
func RemoveWorkout(deps *cli.Deps, indexArg string, yes bool) {
	titles := deps.Services.Workouts.Titles()
	index, err := cli.ParseIndex(indexArg, len(titles))
	if err != nil {
		deps.Fail("Invalid workout index", err, "List workouts with 'wl' to see available indices")
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Workout to remove: %s\n", titles[index])
	if !yes && !deps.Confirm("Remove this workout?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Removal cancelled")
		return
	}

	title, err := deps.Services.Workouts.Remove(index)
	if err != nil {
		deps.Fail("Failed to remove workout", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Removed workout: %s\n", title)
}

// ShowWorkout prints the entries of a workout
func ShowWorkout(deps *cli.Deps, title string) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}

	entries := list.Entries()
	_, _ = fmt.Fprintf(deps.Stdout, "%s:\n", list.Title())
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No exercises")
		_, _ = fmt.Fprintf(deps.Stdout, "Hint: Add one with 'wl entry add %q <exercise> <value>'\n", list.Title())
		return
	}

	width := cli.IndexWidth(len(entries))
	for i, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "[%*d] %-24s %8s  %s\n", width, i+1, e.Label, e.Value, e.Kind)
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 40))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s\n", len(entries), cli.Pluralize("exercise", len(entries)))
}

// openList opens a workout by title, failing with a hint when it is unknown.
func openList(deps *cli.Deps, title string) (*workout.List, bool) {
	list, err := deps.Services.Workouts.Open(title)
	if err != nil {
		if errors.Is(err, service.ErrUnknownWorkout) {
			deps.Fail(fmt.Sprintf("Workout %q not found", title), nil, "List workouts with 'wl'")
		} else {
			deps.Fail("Failed to open workout", err, "")
		}
		return nil, false
	}
	return list, true
}
