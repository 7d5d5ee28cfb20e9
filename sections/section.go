// Package sections splits extracted manuscript texts into the per-section
// and per-comment artifacts the revision workflow consumes.
package sections

import (
	"fmt"
	"strings"
)

// Section is one offset-addressed segment of a source text.
type Section struct {
	Name  string
	Order int
	Start int
	End   int
}

// FileName returns the artifact name for the section.
func (s Section) FileName() string {
	return fmt.Sprintf("%02d_%s.txt", s.Order, s.Name)
}

// Text returns the trimmed segment of full covered by the section.
func (s Section) Text(full string) string {
	return strings.TrimSpace(full[s.Start:s.End])
}

// Body returns Text without its leading heading line. Segments that consist
// of the heading alone are returned as they are.
func (s Section) Body(full string) string {
	text := s.Text(full)
	lines := strings.Split(text, "\n")
	if len(lines) > 1 {
		return strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}
	return text
}
