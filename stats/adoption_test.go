package stats

import (
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func TestArticlesPerYear(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColYear, catalog.ColStudies},
		{"Old workhorse", "2016", "100"},
		{"Fresh entrant", "2024", "40"},
		{"No studies", "2020", "0"},
		{"No year", "---", "50"},
		{"Future launch", "2027", "10"},
	})

	rates := ArticlesPerYear(cat, 2026)
	if len(rates) != 2 {
		t.Fatalf("expected 2 rated devices, got %d", len(rates))
	}
	// 40/2 = 20 beats 100/10 = 10.
	if rates[0].Model != "Fresh entrant" || !almostEqual(rates[0].PerYear, 20) {
		t.Fatalf("unexpected leader: %+v", rates[0])
	}
	if rates[1].Years != 10 || !almostEqual(rates[1].PerYear, 10) {
		t.Fatalf("unexpected runner-up: %+v", rates[1])
	}
}

func TestStudyConcentration_Uniform(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColStudies},
		{"A", "5"}, {"B", "5"}, {"C", "5"}, {"D", "5"},
	})
	c := StudyConcentration(cat)
	if c == nil {
		t.Fatalf("expected concentration")
	}
	// The Lorenz curve omits the origin, so a uniform distribution yields
	// 1/(2n) rather than zero.
	if !almostEqual(c.Gini, 0.0625) {
		t.Fatalf("gini=%v want 0.0625", c.Gini)
	}
}

func TestStudyConcentration_Skewed(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColStudies},
		{"A", "0"}, {"B", "10"},
	})
	c := StudyConcentration(cat)
	if c == nil {
		t.Fatalf("expected concentration")
	}
	if !almostEqual(c.Gini, 0.5) {
		t.Fatalf("gini=%v want 0.5", c.Gini)
	}
}

func TestStudyConcentration_TopShare(t *testing.T) {
	rows := [][]string{{catalog.ColModel, catalog.ColStudies}}
	for _, s := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"} {
		rows = append(rows, []string{"D" + s, s})
	}
	c := StudyConcentration(testCatalog(t, rows))
	if c == nil {
		t.Fatalf("expected concentration")
	}
	got := c.TopShare(0.8)
	want := (1 - 45.0/55.0) * 100
	if !almostEqual(got, want) {
		t.Fatalf("top share=%v want %v", got, want)
	}
}

func TestStudyConcentration_TooFew(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColStudies},
		{"A", "5"},
		{"B", "---"},
	})
	if c := StudyConcentration(cat); c != nil {
		t.Fatalf("expected nil for a single sample, got %+v", c)
	}
}
