// Package diff computes per-line, per-character differences between two
// versions of an article body for the history view.
//
// The comparison is strictly positional: old lines are walked by index
// and compared against the new line at the same index (empty string when
// the new text is shorter). Insertions or deletions that shift line
// numbers are not realigned; this is not an LCS/Myers diff. The editor
// history view depends on this exact contract.
package diff

import "strings"

// Kind classifies a single changed character position.
type Kind string

const (
	Added   Kind = "added"
	Removed Kind = "removed"
	Changed Kind = "changed"
)

// Span is one differing character position within a line. Index counts
// runes. OldValue is empty for Added spans, NewValue for Removed ones.
type Span struct {
	Index    int    `json:"index"`
	Kind     Kind   `json:"type"`
	OldValue string `json:"oldValue,omitempty"`
	NewValue string `json:"newValue,omitempty"`
}

// LineDiff holds the character spans for one differing line. Line is
// 1-based.
type LineDiff struct {
	Line  int    `json:"line"`
	Spans []Span `json:"diffs"`
}

// Compare diffs two text blobs line by line. Lines present only in the
// new text beyond the old text's length are ignored, matching the
// positional contract.
func Compare(oldText, newText string) []LineDiff {
	oldLines := splitLines(oldText)
	newLines := splitLines(newText)

	var results []LineDiff
	for i, oldLine := range oldLines {
		newLine := ""
		if i < len(newLines) {
			newLine = newLines[i]
		}
		if oldLine != newLine {
			results = append(results, LineDiff{
				Line:  i + 1,
				Spans: compareLines(oldLine, newLine),
			})
		}
	}
	return results
}

func compareLines(oldLine, newLine string) []Span {
	oldRunes := []rune(oldLine)
	newRunes := []rune(newLine)
	length := len(oldRunes)
	if len(newRunes) > length {
		length = len(newRunes)
	}

	var spans []Span
	for i := 0; i < length; i++ {
		var oldValue, newValue string
		if i < len(oldRunes) {
			oldValue = string(oldRunes[i])
		}
		if i < len(newRunes) {
			newValue = string(newRunes[i])
		}
		if oldValue == newValue {
			continue
		}

		kind := Changed
		if oldValue == "" {
			kind = Added
		} else if newValue == "" {
			kind = Removed
		}
		spans = append(spans, Span{Index: i, Kind: kind, OldValue: oldValue, NewValue: newValue})
	}
	return spans
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
