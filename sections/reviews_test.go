package sections

import "testing"

const reviewText = "Decision Letter (RRS-25-0142)\nDear authors,\nwe require revisions.\n\n" +
	"Reviewer 1\nOverall solid survey.\n" +
	"R1C1.\nClarify the sampling table.\n" +
	"R1C2.\nAdd consumer prices.\n\n" +
	"Reviewer 2\n" +
	"R2C1.\nFix figure resolution.\n" +
	"Additional Questions\n" +
	"R2AQ1.\nIs the API open?\n\n" +
	"Reviewer 3\nNo further comments.\n\n" +
	"FINAL STATEMENT\nAccepted with minor revisions.\n"

func TestSplitReviews(t *testing.T) {
	result := SplitReviews(reviewText)
	want := []struct {
		name string
		file string
	}{
		{"Decision_Letter", "00_Decision_Letter.txt"},
		{"Reviewer_1", "01_Reviewer_1.txt"},
		{"Reviewer_2", "02_Reviewer_2.txt"},
		{"Reviewer_3", "03_Reviewer_3.txt"},
		{"Final_Statement", "04_Final_Statement.txt"},
	}
	if len(result) != len(want) {
		t.Fatalf("expected %d sections, got %d: %+v", len(want), len(result), result)
	}
	for i, section := range result {
		if section.Name != want[i].name || section.FileName() != want[i].file {
			t.Fatalf("section %d = %s (%s), want %s (%s)", i, section.Name, section.FileName(), want[i].name, want[i].file)
		}
	}

	if got := result[0].Text(reviewText); got != "Decision Letter (RRS-25-0142)\nDear authors,\nwe require revisions." {
		t.Fatalf("unexpected decision letter %q", got)
	}
	if got := result[1].Text(reviewText); got != "Reviewer 1\nOverall solid survey.\nR1C1.\nClarify the sampling table.\nR1C2.\nAdd consumer prices." {
		t.Fatalf("unexpected reviewer 1 block %q", got)
	}
	if got := result[3].Text(reviewText); got != "Reviewer 3\nNo further comments." {
		t.Fatalf("unexpected reviewer 3 block %q", got)
	}
	if got := result[4].Text(reviewText); got != "FINAL STATEMENT\nAccepted with minor revisions." {
		t.Fatalf("unexpected final statement %q", got)
	}
}

func TestSplitReviews_NoFinalStatement(t *testing.T) {
	text := "Reviewer 1\nFine.\n\nReviewer 2\nAlso fine.\n"
	result := SplitReviews(text)
	if len(result) != 2 {
		t.Fatalf("expected 2 sections, got %d: %+v", len(result), result)
	}
	if result[0].FileName() != "01_Reviewer_1.txt" || result[1].FileName() != "02_Reviewer_2.txt" {
		t.Fatalf("unexpected file names %s, %s", result[0].FileName(), result[1].FileName())
	}
	if got := result[1].Text(text); got != "Reviewer 2\nAlso fine." {
		t.Fatalf("unexpected trailing block %q", got)
	}
}

func TestSplitComments(t *testing.T) {
	comments := SplitComments(reviewText)
	want := []Comment{
		{Code: "R1C1", Text: "R1C1.\nClarify the sampling table."},
		{Code: "R1C2", Text: "R1C2.\nAdd consumer prices."},
		{Code: "R2C1", Text: "R2C1.\nFix figure resolution."},
		{Code: "R2AQ1", Text: "R2AQ1.\nIs the API open?"},
	}
	if len(comments) != len(want) {
		t.Fatalf("expected %d comments, got %d: %+v", len(want), len(comments), comments)
	}
	for i, comment := range comments {
		if comment.Code != want[i].Code {
			t.Fatalf("comment %d code = %q, want %q", i, comment.Code, want[i].Code)
		}
		if comment.Text != want[i].Text {
			t.Fatalf("comment %d text = %q, want %q", i, comment.Text, want[i].Text)
		}
	}
}

func TestSplitComments_NoMarkers(t *testing.T) {
	if got := SplitComments("Reviewer 1\nLooks good to me.\n"); len(got) != 0 {
		t.Fatalf("expected no comments, got %+v", got)
	}
}
