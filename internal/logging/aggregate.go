package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Entry is one parsed log line.
type Entry struct {
	Time      time.Time
	Level     string
	Msg       string
	Component string
	SessionID string
	Team      string
	// Attrs holds every other field of the line.
	Attrs map[string]any
}

// Filter selects entries. The zero Filter matches everything.
type Filter struct {
	// MinLevel keeps entries at or above this level ("" keeps all).
	MinLevel string
	// Since keeps entries at or after this time.
	Since time.Time
	// Component keeps entries from one component ("board", "tui", "web").
	Component string
	// Pattern must match the message or one of the attribute values.
	Pattern *regexp.Regexp
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// IsValidLevel reports whether level names a known level (case-insensitive).
func IsValidLevel(level string) bool {
	_, ok := levelOrder[strings.ToUpper(level)]
	return ok
}

// Matches reports whether e passes every criterion in f.
func (f Filter) Matches(e Entry) bool {
	if f.MinLevel != "" && levelOrder[strings.ToUpper(e.Level)] < levelOrder[strings.ToUpper(f.MinLevel)] {
		return false
	}
	if !f.Since.IsZero() && e.Time.Before(f.Since) {
		return false
	}
	if f.Component != "" && e.Component != f.Component {
		return false
	}
	if f.Pattern != nil {
		text := e.Msg
		for _, v := range e.Attrs {
			text += " " + fmt.Sprint(v)
		}
		if !f.Pattern.MatchString(text) {
			return false
		}
	}
	return true
}

// ReadEntries parses the log file at path together with up to maxBackups
// rotated files and returns the entries matching f, oldest first. Lines
// that are not JSON are skipped.
func ReadEntries(path string, maxBackups int, f Filter) ([]Entry, error) {
	files := append(BackupPaths(path, maxBackups), path)

	var entries []Entry
	for _, p := range files {
		fileEntries, err := readFile(p)
		if err != nil {
			if os.IsNotExist(err) && p != path {
				continue
			}
			return nil, err
		}
		for _, e := range fileEntries {
			if f.Matches(e) {
				entries = append(entries, e)
			}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	return entries, nil
}

func readFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		e, err := ParseEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return entries, nil
}

// ParseEntry parses one JSON log line.
func ParseEntry(line string) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, fmt.Errorf("invalid log line: %w", err)
	}

	take := func(key string) string {
		v, _ := raw[key].(string)
		delete(raw, key)
		return v
	}

	e := Entry{
		Level:     take("level"),
		Msg:       take("msg"),
		Component: take("component"),
		SessionID: take("session_id"),
		Team:      take("team"),
	}
	if ts := take("time"); ts != "" {
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return Entry{}, fmt.Errorf("invalid log time %q: %w", ts, err)
		}
		e.Time = t
	}
	if len(raw) > 0 {
		e.Attrs = raw
	}
	return e, nil
}
