package hxd

import (
	"fmt"
	"io/fs"

	"github.com/pkg/errors"
)

type Op string

const (
	OpOpen  Op = "open"
	OpRead  Op = "read"
	OpWrite Op = "write"
	OpClose Op = "close"
)

var (
	errInvArg = errors.New("invalid argument")
	errInvMD  = fmt.Errorf("invalid message digest (%s)", MDString)
)

// Error records the operation and file behind a failed I/O call.
type Error struct {
	Op   Op
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Cause() error { return e.Err }

func fail(op Op, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		if path == "" {
			path = pe.Path
		}
		err = pe.Err
	}
	return errors.WithStack(&Error{Op: op, Path: path, Err: err})
}

// OpOf reports the operation of the first *Error in err's chain.
func OpOf(err error) (op Op, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Op, true
	}
	return
}
