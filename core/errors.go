package core

import "errors"

var (
	// ErrInvalidArgument indicates a nil or otherwise unusable argument,
	// such as registering a nil destination.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrFormat indicates a message template whose verbs do not match its arguments.
	ErrFormat = errors.New("message format mismatch")
	// ErrAlreadySent is returned when a builder is submitted a second time.
	ErrAlreadySent = errors.New("entry already sent")
	// ErrUnknownKind indicates an unrecognized kind name.
	ErrUnknownKind = errors.New("unknown kind")
)
