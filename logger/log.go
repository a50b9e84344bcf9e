// This file is part of cmgui.
//
// cmgui is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmgui is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmgui.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Severity classifies a log entry. The interpreter reports everything it has
// to say about a command through the logger, so an entry can be an error, a
// warning or simply information.
type Severity int

// List of valid Severity values.
const (
	Information Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	}
	return "INFORMATION"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Severity  Severity
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a bounded list of log entries. Adjacent entries with the same tag,
// detail and severity are collapsed into one entry with a repeat count.
type Logger struct {
	mu sync.Mutex

	maxEntries int
	entries    []Entry

	echo     io.Writer
	colorize bool
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// detailString converts the detail argument to a string. error and Stringer
// types are handled explicitly, everything else is formatted with the %v
// verb.
func detailString(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

// Log adds an entry of Information severity.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	l.Display(perm, Information, tag, detail)
}

// Logf adds a formatted entry of Information severity.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	l.Display(perm, Information, tag, fmt.Sprintf(detail, args...))
}

// Display adds an entry of the specified severity.
func (l *Logger) Display(perm Permission, sev Severity, tag string, detail any) {
	if perm != Allow && !perm.AllowLogging() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	d := strings.ReplaceAll(detailString(detail), "\n", " ")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e != nil && e.Tag == tag && e.Detail == d && e.Severity == sev {
		e.repeated++
		e.Timestamp = time.Now()
	} else {
		l.entries = append(l.entries, Entry{
			Timestamp: time.Now(),
			Severity:  sev,
			Tag:       tag,
			Detail:    d,
		})
		e = &l.entries[len(l.entries)-1]
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
		e = &l.entries[len(l.entries)-1]
	}

	if l.echo != nil {
		if l.colorize {
			io.WriteString(l.echo, colorizeEntry(e))
		} else {
			io.WriteString(l.echo, e.String())
		}
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the log to the io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

// Tail writes the last N entries to the io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// cap number to the number of entries
	number = min(number, len(l.entries))
	for i := len(l.entries) - number; i < len(l.entries); i++ {
		io.WriteString(output, l.entries[i].String())
	}
}

// SetEcho sets the io.Writer to which every new entry is also written. A nil
// writer turns off echoing. Entries are written with ANSI colours if colorize
// is true.
func (l *Logger) SetEcho(output io.Writer, colorize bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = output
	l.colorize = colorize
}

// Entries returns a copy of the current entries.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := make([]Entry, len(l.entries))
	copy(c, l.entries)
	return c
}

// Count returns the number of entries with the specified severity.
func (l *Logger) Count(sev Severity) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for i := range l.entries {
		if l.entries[i].Severity == sev {
			n += l.entries[i].repeated + 1
		}
	}
	return n
}
