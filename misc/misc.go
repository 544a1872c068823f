// Package misc provides small odds and ends: tail-of-file manipulation and
// number formatting helpers.
package misc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Areteos/arete-utilities/logger"
)

// lastLineOffset scans a file backwards from the end for the start of its
// last line, skipping a trailing newline. Returns the byte offset of the
// line's first character and false if the file is empty.
func lastLineOffset(file *os.File) (int64, bool, error) {
	info, err := file.Stat()
	if err != nil {
		return 0, false, err
	}
	offset := info.Size() - 1
	if offset < 0 {
		return 0, false, nil
	}

	buf := make([]byte, 1)
	for offset > 0 {
		offset--
		if _, err := file.ReadAt(buf, offset); err != nil {
			return 0, false, err
		}
		if buf[0] == '\n' {
			offset++
			break
		}
	}
	return offset, true, nil
}

// LastLineOfFile finds and returns the last line of the named file. The
// second return is false for an empty file. A newline at the end of the file
// is skipped, so a file ending "...\nfoo\n" yields "foo".
func LastLineOfFile(filename string) (string, bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", false, fmt.Errorf("reading last line: %w", err)
	}
	defer file.Close()

	offset, ok, err := lastLineOffset(file)
	if err != nil {
		return "", false, fmt.Errorf("reading last line of %s: %w", filename, err)
	}
	if !ok {
		return "", false, nil
	}

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return "", false, fmt.Errorf("reading last line of %s: %w", filename, err)
	}
	rest, err := io.ReadAll(file)
	if err != nil {
		return "", false, fmt.Errorf("reading last line of %s: %w", filename, err)
	}

	line := strings.TrimSuffix(string(rest), "\n")
	return line, true, nil
}

// DeleteLastLineOfFile truncates the named file's last line along with the
// newline that ended it; the newline before the line survives. A newline at
// the end of the file is skipped, matching LastLineOfFile. Deleting from an
// empty file is a no-op.
func DeleteLastLineOfFile(filename string) error {
	file, err := os.OpenFile(filename, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("deleting last line: %w", err)
	}
	defer file.Close()

	offset, ok, err := lastLineOffset(file)
	if err != nil {
		return fmt.Errorf("deleting last line of %s: %w", filename, err)
	}
	if !ok {
		return nil
	}

	if err := file.Truncate(offset); err != nil {
		return fmt.Errorf("deleting last line of %s: %w", filename, err)
	}
	logger.Get("misc").Debug("deleted last line", logger.Fields("file", filename, "new_size", offset))
	return nil
}

// StripTrailingZeros renders a number with all redundant zeros stripped away:
// 5.0 becomes "5", 1.20 becomes "1.2".
func StripTrailingZeros(input float64) string {
	s := fmt.Sprint(input)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
