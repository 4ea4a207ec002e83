// Package file groups the filesystem queries shared by the locator and
// the files driver.
package file

import (
	"bytes"
	"io"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"
)

// Validation is the result code of Validate.
type Validation int

const (
	// Valid is returned for a path passing all traversal checks.
	Valid Validation = iota

	// Traversal is returned for a path with more than one "../", or a "../"
	// anywhere but at the end.
	Traversal

	// DrivePath is returned for a Windows drive-letter absolute path.
	DrivePath
)

const (
	parentDir = "../"

	// ChunkSize is the read size used by CountLines.
	ChunkSize = 8 * 1024
)

func (t Validation) String() string {
	switch t {
	case Valid:
		return "valid"
	case Traversal:
		return "traversal"
	case DrivePath:
		return "drive path"
	default:
		return "unknown"
	}
}

// Validate checks a path against directory traversal.
// A single "../" is tolerated only as the path suffix.
func Validate(p string) Validation {
	if p == "" {
		return Valid
	}
	if p == parentDir {
		return Traversal
	}
	if n := strings.Count(p, parentDir); n > 1 {
		return Traversal
	} else if n == 1 && !strings.HasSuffix(p, parentDir) {
		return Traversal
	}
	if isDrivePath(p) {
		return DrivePath
	}
	return Valid
}

func isDrivePath(p string) bool {
	// second character, counted in runes
	_, size := utf8.DecodeRuneInString(p)
	if size >= len(p) {
		return false
	}
	return p[size] == ':'
}

func IsNotDir(err error) bool {
	e, ok := err.(*os.PathError)
	if !ok {
		return false
	}
	return e.Err == syscall.ENOTDIR
}

// Exists returns true if the file path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil
}

// ExistsAndRegular returns true if the file path exists and is a regular file.
func ExistsAndRegular(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return false, nil
	case IsNotDir(err):
		return false, nil
	case err != nil:
		return false, err
	default:
		return info.Mode().IsRegular(), nil
	}
}

// DoesExist returns true if the path is not empty, exists, and passes
// Validate.
func DoesExist(p string) bool {
	return p != "" && Exists(p) && Validate(p) == Valid
}

// CountLines returns the number of "\n" read from r, reading ChunkSize
// bytes at a time.
func CountLines(r io.Reader) (int, error) {
	buf := make([]byte, ChunkSize)
	count := 0
	for {
		n, err := r.Read(buf)
		count += bytes.Count(buf[:n], []byte{'\n'})
		switch {
		case err == io.EOF:
			return count, nil
		case err != nil:
			return count, err
		}
	}
}

// CountFileLines opens p and returns CountLines of its content.
func CountFileLines(p string) (int, error) {
	f, err := os.Open(p)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()
	return CountLines(f)
}
