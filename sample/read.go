package sample

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadValues appends whitespace-separated numeric tokens from r to b.
// Parsing stops silently at the first token that does not parse as a
// float; a malformed trailing token is not an error. The returned
// error is non-nil only if reading from r itself fails.
func ReadValues(r io.Reader, b *Buffer) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil
		}
		b.Append(v)
	}

	return sc.Err()
}

// ReadFile reads the leading numeric tokens of the named file into a
// fresh Buffer with the given initial capacity. A file that cannot be
// opened is the only expected failure.
func ReadFile(path string, initialCap int) (*Buffer, error) {
	b, err := New(initialCap)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := ReadValues(f, b); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return b, nil
}
