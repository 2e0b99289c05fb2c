package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a fetch or extraction failed.
type FailureKind int

const (
	// NetworkFailure covers anything between us and the remote host:
	// DNS, connection and protocol errors as well as non-200 statuses.
	NetworkFailure FailureKind = iota

	// LocalIOFailure covers the local filesystem: creating or writing a
	// destination file, or opening and reading the index file.
	LocalIOFailure
)

// String returns the name of the failure kind.
func (k FailureKind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case LocalIOFailure:
		return "local I/O failure"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Sentinel errors matched by Failure.Is.
//
// Use errors.Is to classify an error without a type assertion:
//
//	if errors.Is(err, model.ErrNetwork) {
//	    // remote side
//	}
var (
	ErrNetwork = errors.New("network failure")
	ErrLocalIO = errors.New("local I/O failure")
)

// Failure is a classified error returned by the fetcher and the extractor.
type Failure struct {
	// Kind is the failure classification.
	Kind FailureKind

	// Op names the operation that failed, e.g. "get", "create", "read".
	Op string

	// Path is the URL or file path involved.
	Path string

	// Err is the underlying error.
	Err error
}

// NewNetworkFailure wraps err as a NetworkFailure.
func NewNetworkFailure(op, path string, err error) *Failure {
	return &Failure{Kind: NetworkFailure, Op: op, Path: path, Err: err}
}

// NewLocalIOFailure wraps err as a LocalIOFailure.
func NewLocalIOFailure(op, path string, err error) *Failure {
	return &Failure{Kind: LocalIOFailure, Op: op, Path: path, Err: err}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", f.Kind, f.Op, f.Path, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is the sentinel matching this failure's kind.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return f.Kind == NetworkFailure
	case ErrLocalIO:
		return f.Kind == LocalIOFailure
	}
	return false
}

// KindOf returns the failure kind of err.
//
// Errors that are not a *Failure are treated as NetworkFailure, since every
// local filesystem call in this module is wrapped explicitly.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return NetworkFailure
}
