package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const maxLineLength = 1024 * 1024

// ReadLines reads one option per line. Blank lines are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return lines, nil
}
