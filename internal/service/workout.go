package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/xolan/wl/internal/storage"
	"github.com/xolan/wl/internal/templates"
	"github.com/xolan/wl/internal/workout"
)

// ErrUnknownWorkout is returned when a title is not in the collection.
var ErrUnknownWorkout = errors.New("unknown workout")

// WorkoutService provides operations on the workout collection and its entry lists
type WorkoutService struct {
	store      *storage.Store
	templates  templates.Source
	collection *workout.Collection

	mu    sync.Mutex
	lists map[string]*workout.List
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(store *storage.Store, tpl templates.Source, collection *workout.Collection) *WorkoutService {
	return &WorkoutService{
		store:      store,
		templates:  tpl,
		collection: collection,
		lists:      make(map[string]*workout.List),
	}
}

// Collection returns the underlying title collection.
func (s *WorkoutService) Collection() *workout.Collection {
	return s.collection
}

// Titles returns the workout titles in display order.
func (s *WorkoutService) Titles() []string {
	return s.collection.Titles()
}

// Add adds a workout title.
func (s *WorkoutService) Add(title string) error {
	return s.collection.Add(title)
}

// Remove removes the title at the 0-based index and returns it.
func (s *WorkoutService) Remove(index int) (string, error) {
	title, err := s.collection.Remove(index)
	if err != nil {
		return "", fmt.Errorf("%w: %d", err, index+1)
	}
	return title, nil
}

// Open returns the entry list of title. One list instance is kept per title, so every
// caller sees the same state.
func (s *WorkoutService) Open(title string) (*workout.List, error) {
	if !s.collection.Contains(title) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWorkout, title)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.lists[title]; ok {
		return l, nil
	}
	l := workout.Open(s.store, s.templates, title)
	s.lists[title] = l
	return l, nil
}
