package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "popcorn.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		source string
		msg    string
		stamp  bool
		failed bool
	}{
		{
			name:   "search line",
			input:  "2026/10/17 21:01:05 search: query \"alien\" returned 10 results",
			source: "search",
			msg:    "query \"alien\" returned 10 results",
			stamp:  true,
		},
		{
			name:   "failure",
			input:  "2026/10/17 21:01:06 details: tt0078748 failed: failed to fetch movies",
			source: "details",
			msg:    "tt0078748 failed: failed to fetch movies",
			stamp:  true,
			failed: true,
		},
		{
			name:  "no timestamp",
			input: "plain text line",
			msg:   "plain text line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Parse(tt.input)
			if e.Source != tt.source || e.Message != tt.msg {
				t.Fatalf("Parse() = %+v", e)
			}
			if got := !e.Time.IsZero(); got != tt.stamp {
				t.Fatalf("timestamp parsed = %v, want %v", got, tt.stamp)
			}
			if e.Failed != tt.failed {
				t.Fatalf("Failed = %v, want %v", e.Failed, tt.failed)
			}
		})
	}

	e := Parse("2026/10/17 21:01:05 app: started")
	want := time.Date(2026, 10, 17, 21, 1, 5, 0, time.Local)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
}

func TestFilter(t *testing.T) {
	lines := []string{"search: Alien", "details: tt1", "search: heat"}
	if got := Filter(lines, " ALIEN "); !reflect.DeepEqual(got, []string{"search: Alien"}) {
		t.Fatalf("Filter() = %v", got)
	}
	if got := Filter(lines, ""); !reflect.DeepEqual(got, lines) {
		t.Fatalf("Filter(empty) = %v", got)
	}
	if got := Filter(lines, "zzz"); len(got) != 0 {
		t.Fatalf("Filter(zzz) = %v", got)
	}
}
