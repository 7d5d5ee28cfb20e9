package sections

import (
	"regexp"
	"sort"
)

// articleHeadings lists the manuscript headings together with the file labels
// they produce. Only the first occurrence of each heading counts.
var articleHeadings = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?im)^Abstract\s*$`), "Abstract"},
	{regexp.MustCompile(`(?im)^Keywords\s*$`), "Keywords"},
	{regexp.MustCompile(`(?im)^Introduction\s*$`), "Introduction"},
	{regexp.MustCompile(`(?im)^Background\s*$`), "Background"},
	{regexp.MustCompile(`(?im)^Method\s*$`), "Method"},
	{regexp.MustCompile(`(?im)^Results\s*$`), "Results"},
	{regexp.MustCompile(`(?im)^Table Description\s*$`), "Table_Description"},
	{regexp.MustCompile(`(?im)^Discussion of Results\s*$`), "Discussion"},
	{regexp.MustCompile(`(?im)^Limitations of Technologies Evaluated\s*$`), "Limitations"},
	{regexp.MustCompile(`(?im)^Conclusion\s*$`), "Conclusion"},
	{regexp.MustCompile(`(?im)^Acknowledgment\s*$`), "Acknowledgment"},
	{regexp.MustCompile(`(?im)^Bibliography\s*$`), "Bibliography"},
}

// SplitArticle locates the manuscript headings and slices the text between
// consecutive ones. The preamble before the first heading becomes the Title
// section, which is present even when no heading matches.
func SplitArticle(text string) []Section {
	var found []Section
	for _, heading := range articleHeadings {
		if loc := heading.re.FindStringIndex(text); loc != nil {
			found = append(found, Section{Name: heading.name, Start: loc[0]})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].Start < found[j].Start
	})

	titleEnd := len(text)
	if len(found) > 0 {
		titleEnd = found[0].Start
	}
	result := []Section{{Name: "Title", Order: 0, Start: 0, End: titleEnd}}
	for i := range found {
		found[i].Order = i + 1
		found[i].End = len(text)
		if i+1 < len(found) {
			found[i].End = found[i+1].Start
		}
		result = append(result, found[i])
	}
	return result
}
