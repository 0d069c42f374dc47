/*
Package questions turns model output into the question blocks shown to the interviewer.

Generated text is stored as raw lines; grouping into blocks happens only when the
questions are displayed.
*/
package questions

import "strings"

// Marker is the prefix that opens a new question block.
const Marker = "**Question"

// SplitLines splits raw model output on newlines. This is the form kept in a chat session.
func SplitLines(raw string) []string {
	return strings.Split(raw, "\n")
}

// Parse groups lines into question blocks.
//
// A line starting with Marker closes the open block and opens a new one holding the marker
// line followed by a blank line. Every other line is appended, newline-terminated, to the
// open block. Lines before the first marker are dropped.
func Parse(lines []string) []string {
	var (
		blocks  []string
		current strings.Builder
		open    bool
	)

	for _, line := range lines {
		if strings.HasPrefix(line, Marker) {
			if open {
				blocks = append(blocks, current.String())
				current.Reset()
			}
			current.WriteString(line)
			current.WriteString("\n\n")
			open = true
			continue
		}

		if open {
			current.WriteString(line)
			current.WriteString("\n")
		}
	}

	if open {
		blocks = append(blocks, current.String())
	}

	if blocks == nil {
		return []string{}
	}
	return blocks
}
