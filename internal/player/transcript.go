package player

import "strings"

// Transcript is the append-only text trace of a run.
type Transcript struct {
	lines []string
}

func (t *Transcript) Append(lines ...string) {
	t.lines = append(t.lines, lines...)
}

func (t *Transcript) Clear() { t.lines = t.lines[:0] }

func (t *Transcript) Len() int { return len(t.lines) }

// Lines returns a copy of the trace.
func (t *Transcript) Lines() []string {
	return append([]string(nil), t.lines...)
}

func (t *Transcript) String() string {
	if len(t.lines) == 0 {
		return ""
	}
	return strings.Join(t.lines, "\n") + "\n"
}
