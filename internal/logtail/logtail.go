package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// stdLayout matches the prefix written by log.LstdFlags.
const stdLayout = "2006/01/02 15:04:05"

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed log line.
type Entry struct {
	Time    time.Time
	Source  string
	Message string
	Failed  bool
}

// Parse splits a line written by the standard logger into its timestamp,
// its "source:" prefix and the message. Lines without a timestamp are kept
// whole in Message.
func Parse(line string) Entry {
	var e Entry
	rest := line
	if len(line) >= len(stdLayout) {
		if ts, err := time.ParseInLocation(stdLayout, line[:len(stdLayout)], time.Local); err == nil {
			e.Time = ts
			rest = strings.TrimSpace(line[len(stdLayout):])
		}
	}
	if src, msg, ok := strings.Cut(rest, ": "); ok && src != "" && !strings.ContainsAny(src, " \t") {
		e.Source = src
		rest = msg
	}
	e.Message = rest
	lower := strings.ToLower(rest)
	e.Failed = strings.Contains(lower, "error") || strings.Contains(lower, "failed")
	return e
}

// Filter returns the lines containing needle, ignoring case. An empty needle
// returns lines unchanged.
func Filter(lines []string, needle string) []string {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return lines
	}
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), needle) {
			out = append(out, line)
		}
	}
	return out
}
