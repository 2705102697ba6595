// Package error carries diagnostics that point at a line of a UCD data
// file. Generation failures surface one of these so the user sees the
// offending file and line, with the line echoed when it is still
// readable.
package error

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type SourceError struct {
	Cause error
	Path  string
	Row   int
}

func (e *SourceError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "%v: ", e.Path)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)

	line := readLine(e.Path, e.Row)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
	}

	return b.String()
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

func readLine(path string, row int) string {
	if path == "" || row <= 0 {
		return ""
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	i := 1
	s := bufio.NewScanner(f)
	for s.Scan() {
		if i == row {
			return s.Text()
		}
		i++
	}

	return ""
}
