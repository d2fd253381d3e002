package service

import (
	"errors"
	"fmt"

	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/workout"
)

// ErrNotTimed is returned when a countdown is requested for a Reps entry.
var ErrNotTimed = errors.New("entry is not timed")

// TimerService runs countdowns for timed entries
type TimerService struct {
	controller *timer.Controller
}

// NewTimerService creates a new TimerService
func NewTimerService(controller *timer.Controller) *TimerService {
	return &TimerService{controller: controller}
}

// Controller returns the underlying countdown controller.
func (s *TimerService) Controller() *timer.Controller {
	return s.controller
}

// Toggle stops the countdown for the entry if it is the running one, otherwise starts a
// fresh countdown of the entry's current value. It reports whether a countdown is
// running afterwards.
func (s *TimerService) Toggle(list *workout.List, id string) (bool, error) {
	e, err := timedEntry(list, id)
	if err != nil {
		return false, err
	}
	return s.controller.Toggle(e.ID, e.Seconds()), nil
}

// Start starts a countdown for the entry, replacing any running one.
func (s *TimerService) Start(list *workout.List, id string) (workout.Entry, error) {
	e, err := timedEntry(list, id)
	if err != nil {
		return workout.Entry{}, err
	}
	s.controller.Start(e.ID, e.Seconds())
	return e, nil
}

// Stop stops the countdown if id is the running entry.
func (s *TimerService) Stop(id string) bool {
	return s.controller.Stop(id)
}

// Session returns the current countdown session.
func (s *TimerService) Session() timer.Session {
	return s.controller.Session()
}

// Subscribe registers fn for countdown events.
func (s *TimerService) Subscribe(fn func(timer.Event)) (cancel func()) {
	return s.controller.Subscribe(fn)
}

// Close stops any countdown.
func (s *TimerService) Close() {
	s.controller.Close()
}

func timedEntry(list *workout.List, id string) (workout.Entry, error) {
	e, ok := list.Get(id)
	if !ok {
		return workout.Entry{}, workout.ErrEntryNotFound
	}
	if !e.Timed() {
		return workout.Entry{}, fmt.Errorf("%w: %q is measured in %s", ErrNotTimed, e.Label, e.Kind)
	}
	return e, nil
}
