package handlers

import (
	"errors"
	"fmt"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/workout"
)

// AddEntry appends an exercise to a workout
func AddEntry(deps *cli.Deps, title, label, value string, kind workout.Kind) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}

	e, err := list.Add(label, value, kind)
	if err != nil {
		failEntry(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Added to %s: %s\n", list.Title(), cli.FormatEntry(e))
}

// EditEntry changes the label and/or value of the exercise at a 1-based index.
// A nil argument leaves that field as it is.
func EditEntry(deps *cli.Deps, title, indexArg string, label, value *string) {
	if label == nil && value == nil {
		deps.Fail("At least one flag (--label or --value) is required", nil,
			"Usage: wl entry edit <title> <index> --label 'text' --value 10")
		return
	}

	list, ok := openList(deps, title)
	if !ok {
		return
	}
	index, err := cli.ParseIndex(indexArg, list.Len())
	if err != nil {
		deps.Fail("Invalid exercise index", err, fmt.Sprintf("Show exercises with 'wl show %q'", title))
		return
	}

	e, _ := list.At(index)
	if err := list.Update(e.ID, label, value); err != nil {
		failEntry(deps, err)
		return
	}

	e, _ = list.Get(e.ID)
	_, _ = fmt.Fprintf(deps.Stdout, "Updated exercise %d: %s\n", index+1, cli.FormatEntry(e))
}

// RemoveEntry deletes the exercise at a 1-based index
func RemoveEntry(deps *cli.Deps, title, indexArg string) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}
	index, err := cli.ParseIndex(indexArg, list.Len())
	if err != nil {
		deps.Fail("Invalid exercise index", err, fmt.Sprintf("Show exercises with 'wl show %q'", title))
		return
	}

	e, _ := list.At(index)
	if err := list.Delete(index); err != nil {
		failEntry(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Deleted: %s\n", cli.FormatEntry(e))
}

// MoveEntry moves the exercise at one 1-based index so that it ends up at another
func MoveEntry(deps *cli.Deps, title, fromArg, toArg string) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}
	from, err := cli.ParseIndex(fromArg, list.Len())
	if err != nil {
		deps.Fail("Invalid source index", err, fmt.Sprintf("Show exercises with 'wl show %q'", title))
		return
	}
	to, err := cli.ParseIndex(toArg, list.Len())
	if err != nil {
		deps.Fail("Invalid target index", err, fmt.Sprintf("Show exercises with 'wl show %q'", title))
		return
	}

	e, _ := list.At(from)
	if err := list.Move(from, to); err != nil {
		failEntry(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Moved %s to position %d\n", e.Label, to+1)
}

// ResetWorkout replaces a workout's exercises with its template after confirmation
func ResetWorkout(deps *cli.Deps, title string, yes bool) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "This discards every change made to %s.\n", list.Title())
	if !yes && !deps.Confirm("Reset to the default exercises?") {
		_, _ = fmt.Fprintln(deps.Stdout, "Reset cancelled")
		return
	}

	list.SetEditing(true)
	defer list.SetEditing(false)
	if err := list.ResetToTemplate(); err != nil {
		failEntry(deps, err)
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Reset %s: %d %s\n", list.Title(), list.Len(), cli.Pluralize("exercise", list.Len()))
}

func failEntry(deps *cli.Deps, err error) {
	switch {
	case errors.Is(err, workout.ErrEmptyField):
		deps.Fail("Exercise and value cannot be empty", nil, "")
	case errors.Is(err, workout.ErrIndexOutOfRange):
		deps.Fail("Index is out of range", err, "")
	case errors.Is(err, workout.ErrEntryNotFound):
		deps.Fail("Exercise not found", err, "")
	default:
		deps.Fail("Failed to update workout", err, "")
	}
}
