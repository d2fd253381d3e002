package workout

import "errors"

// Validation errors. A call that returns one of these left the collection or list
// untouched and wrote nothing.
var (
	ErrEmptyTitle      = errors.New("workout title cannot be empty")
	ErrDuplicateTitle  = errors.New("workout title already exists")
	ErrEmptyField      = errors.New("exercise and value cannot be empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrNotEditing      = errors.New("list is not in editing mode")
)
