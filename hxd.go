package hxd

import (
	"bufio"
	"hash"
	"io"
	"os"
)

func checkArgs(in io.Reader, out io.Writer) error {
	if in == nil || out == nil {
		return errInvArg
	}
	return nil
}

// Pass copies the first chunk of in to out with a single read and a single write.
func Pass(in io.Reader, out io.Writer) (n int, err error) {
	err = checkArgs(in, out)
	if err != nil {
		return
	}
	var buf [ChunkSize]byte
	n, err = in.Read(buf[:])
	if err != nil && err != io.EOF {
		return 0, fail(OpRead, "", err)
	}
	err = nil
	if n > ChunkSize {
		n = ChunkSize
	}
	if n == 0 {
		return
	}
	w, err := out.Write(buf[:n])
	if err == nil && w != n {
		err = io.ErrShortWrite
	}
	if err != nil {
		return w, fail(OpWrite, "", err)
	}
	return
}

func dump(in io.Reader, out io.Writer, name string) (size int64, err error) {
	w := bufio.NewWriter(out)
	defer (func() {
		if e := w.Flush(); e != nil && err == nil {
			err = fail(OpWrite, "", e)
		}
	})()
	var (
		buf  [ChunkSize]byte
		line = make([]byte, 0, OffsetWidth+1+ChunkSize*4+1)
	)
	for {
		n, e := in.Read(buf[:])
		if n > ChunkSize {
			n = ChunkSize
		}
		if n > 0 {
			line = AppendLine(line[:0], size, buf[:n])
			if _, err = w.Write(line); err != nil {
				return size, fail(OpWrite, "", err)
			}
			size += int64(n)
		}
		if e == io.EOF || e == nil && n == 0 {
			break
		}
		if e != nil {
			return size, fail(OpRead, name, e)
		}
	}
	if _, err = w.Write(AppendTotal(line[:0], size)); err != nil {
		return size, fail(OpWrite, "", err)
	}
	return
}

// Dump writes the hex listing of in to out and returns the number of bytes
// consumed. Output already produced is flushed even when it fails.
func Dump(in io.Reader, out io.Writer) (int64, error) {
	if err := checkArgs(in, out); err != nil {
		return 0, err
	}
	return dump(in, out, "")
}

// DumpFile dumps the named file. When printFn is set the file contents are
// also hashed with md and reported after the file is closed.
func DumpFile(name string, out io.Writer, md MD, printFn PrintFunc) (size int64, err error) {
	if out == nil {
		return 0, errInvArg
	}
	var (
		r io.Reader
		h hash.Hash
	)
	if printFn != nil {
		if h, err = getMD(md); err != nil {
			return
		}
	}
	file, err := os.Open(name)
	if err != nil {
		return 0, fail(OpOpen, name, err)
	}
	r = file
	if h != nil {
		r = io.TeeReader(file, h)
	}
	size, err = dump(r, out, name)
	if err != nil {
		file.Close()
		return
	}
	if err = file.Close(); err != nil {
		return size, fail(OpClose, name, err)
	}
	if printFn != nil {
		err = printFn(name, size, md, h.Sum(nil))
	}
	return
}

// DumpFiles dumps each file in order and stops at the first failure.
func DumpFiles(names []string, out io.Writer, md MD, printFn PrintFunc) error {
	for _, name := range names {
		if _, err := DumpFile(name, out, md, printFn); err != nil {
			return err
		}
	}
	return nil
}
