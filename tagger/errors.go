package tagger

import (
	"errors"
	"fmt"
)

var (
	// ErrAlignment is matched by every *AlignmentError.
	ErrAlignment = errors.New("tag alignment mismatch")

	// ErrModel wraps failures returned by the Model itself.
	ErrModel = errors.New("tagging model failed")
)

// AlignmentError reports a model that returned a number of tags different
// from the number of tokens it was given. Tokens counts the padding token.
type AlignmentError struct {
	Doc      int
	Sentence int
	Tokens   int
	Tags     int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("doc %d sentence %d: %d tags for %d tokens", e.Doc, e.Sentence, e.Tags, e.Tokens)
}

func (e *AlignmentError) Unwrap() error {
	return ErrAlignment
}
