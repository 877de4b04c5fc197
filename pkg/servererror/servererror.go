package servererror

import (
	"errors"
)

// Kind tags an internal fault so the http boundary can map it explicitly
// instead of collapsing every failure into one shape.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindAlreadyExists
	KindPersistence
	KindFeedUnavailable
	KindSyncFailed
	KindValidation
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of the outermost tagged error in err's chain,
// 0 when the chain carries no tag.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
