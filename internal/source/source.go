package source

import (
	"fmt"
	"io"
	"os"
)

// Failure reports which step of reading a file went wrong. Op is one of
// "open", "stat" or "read"; Err is the underlying error as returned by the OS.
type Failure struct {
	Op   string
	Path string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Path, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Read opens path read-only and returns the whole file in one pass.
// The file is not locked; other processes may keep reading or writing it.
// A zero-length file yields an empty, non-nil slice.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Failure{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &Failure{Op: "stat", Path: path, Err: unwrapPathError(err)}
	}
	size := info.Size()
	if size < 0 || int64(int(size)) != size {
		return nil, &Failure{Op: "stat", Path: path, Err: fmt.Errorf("unsupported file size %d", size)}
	}

	buf := make([]byte, int(size))
	// Short reads are failures; there is no retry.
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, &Failure{Op: "read", Path: path, Err: unwrapPathError(err)}
	}
	return buf, nil
}

// unwrapPathError strips *os.PathError so Failure does not repeat the path.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
