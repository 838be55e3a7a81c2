package hxd

import (
	"io/fs"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	boom := errors.New("boom")
	var tests = []struct {
		name string
		op   Op
		path string
		err  error
		want string
	}{
		{"bare", OpWrite, "", boom, "write: boom"},
		{"path", OpClose, "a.bin", boom, "close a.bin: boom"},
		{"path error", OpOpen, "", &fs.PathError{Op: "open", Path: "b.bin", Err: boom}, "open b.bin: boom"},
		{"path error keeps name", OpRead, "c.bin", &fs.PathError{Op: "read", Path: "other", Err: boom}, "read c.bin: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fail(tt.op, tt.path, tt.err)
			if got := err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if errors.Cause(err) != boom {
				t.Errorf("got cause %v, want %v", errors.Cause(err), boom)
			}
			if op, ok := OpOf(err); !ok || op != tt.op {
				t.Errorf("got op %q, want %q", op, tt.op)
			}
		})
	}
}

func TestOpOfForeignError(t *testing.T) {
	if op, ok := OpOf(errors.New("plain")); ok {
		t.Errorf("got op %q for a plain error", op)
	}
}
