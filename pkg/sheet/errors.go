package sheet

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the file extension is neither .csv nor .xlsx.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// CodecError represents a failure while importing or exporting a file.
type CodecError struct {
	Path string
	Op   string // "import", "export"
	Err  error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// NewCodecError creates a new CodecError.
func NewCodecError(path, op string, err error) *CodecError {
	return &CodecError{Path: path, Op: op, Err: err}
}
