package learnpath

import (
	"encoding/json"
	"fmt"
)

// ErrInvalidOutline indicates a generator returned a tree that does not
// conform to the outline schema.
type ErrInvalidOutline struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidOutline) Error() string {
	return fmt.Sprintf("invalid learning path: %v", e.Err)
}

func (e *ErrInvalidOutline) Unwrap() error { return e.Err }
