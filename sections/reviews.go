package sections

import (
	"regexp"
	"strings"
)

// reviewBlocks describes the reviewer segments of a decision document. Each
// block runs from its marker to the first end marker found after it, or to
// the end of the document.
var reviewBlocks = []struct {
	start *regexp.Regexp
	end   string
	name  string
}{
	{regexp.MustCompile(`Reviewer 1\s*\n`), "Reviewer 2", "Reviewer_1"},
	{regexp.MustCompile(`Reviewer 2\s*\n`), "Reviewer 3", "Reviewer_2"},
	{regexp.MustCompile(`Reviewer 3\s*\n`), "FINAL STATEMENT", "Reviewer_3"},
	{regexp.MustCompile(`FINAL STATEMENT`), "", "Final_Statement"},
}

var (
	commentStart  = regexp.MustCompile(`R[123]C\d+\.?\s*\n`)
	commentEnd    = regexp.MustCompile(`R[123]C\d+\.|R[123]AQ\d+\.|Additional Questions|Reviewer \d|FINAL STATEMENT`)
	questionStart = regexp.MustCompile(`R[123]AQ\d+\.?\s*\n`)
	questionEnd   = regexp.MustCompile(`R[123]C\d+\.|R[123]AQ\d+\.|Reviewer \d|FINAL STATEMENT`)
	commentCode   = regexp.MustCompile(`^R[123](?:C|AQ)\d+`)
)

// Comment is one individually addressed reviewer remark.
type Comment struct {
	Code string
	Text string
}

// SplitReviews slices the decision letter header, the per-reviewer blocks
// and the final statement out of the document text.
func SplitReviews(text string) []Section {
	var result []Section
	if strings.HasPrefix(text, "Decision Letter") {
		if end := strings.Index(text, "Reviewer 1"); end != -1 {
			result = append(result, Section{Name: "Decision_Letter", Order: 0, Start: 0, End: end})
		}
	}
	order := 1
	for _, block := range reviewBlocks {
		loc := block.start.FindStringIndex(text)
		if loc == nil {
			continue
		}
		end := len(text)
		if block.end != "" {
			if i := strings.Index(text[loc[1]:], block.end); i != -1 {
				end = loc[1] + i
			}
		}
		result = append(result, Section{Name: block.name, Order: order, Start: loc[0], End: end})
		order++
	}
	return result
}

// SplitComments extracts the R<n>C<i> comments followed by the R<n>AQ<i>
// additional questions. Each item runs from its code line to the next
// marker, keeping the code line in the text.
func SplitComments(text string) []Comment {
	items := scanBlocks(text, commentStart, commentEnd)
	items = append(items, scanBlocks(text, questionStart, questionEnd)...)

	var comments []Comment
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		code := commentCode.FindString(item)
		if code == "" {
			continue
		}
		comments = append(comments, Comment{Code: code, Text: item})
	}
	return comments
}

// scanBlocks collects successive non-overlapping blocks, each opening at a
// start match and closing before the first end match that follows it.
func scanBlocks(text string, start, end *regexp.Regexp) []string {
	var blocks []string
	pos := 0
	for pos < len(text) {
		loc := start.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		from := pos + loc[0]
		next := pos + loc[1]
		stop := len(text)
		if m := end.FindStringIndex(text[next:]); m != nil {
			stop = next + m[0]
		}
		blocks = append(blocks, text[from:stop])
		pos = stop
	}
	return blocks
}
