package loader

import (
	"errors"
	"fmt"
	"syscall"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindIO covers open, size query and read failures.
	KindIO Kind = iota + 1
	// KindDecode means the file was read but produced no usable text.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. A *Error matches the sentinel of its Kind.
var (
	ErrIO     = errors.New("io failure")
	ErrDecode = errors.New("decode failure")
	// ErrNotLoaded is returned by Attach when there is no text to hand over,
	// either because Open did not succeed or because it was already consumed.
	ErrNotLoaded = errors.New("no document loaded")
)

// Error is a failed Open. Stage names the step that failed ("open", "stat",
// "read" or "decode") and Code is the OS error number reported to the user.
type Error struct {
	Stage string
	Kind  Kind
	Code  syscall.Errno
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrIO:
		return e.Kind == KindIO
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

func ioError(stage string, err error) *Error {
	code := syscall.EIO
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		code = errno
	}
	return &Error{Stage: stage, Kind: KindIO, Code: code, Err: err}
}

func decodeError(err error) *Error {
	return &Error{Stage: "decode", Kind: KindDecode, Code: syscall.EILSEQ, Err: err}
}
