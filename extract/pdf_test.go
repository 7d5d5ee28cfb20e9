package extract

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestParse_PrintableFallback(t *testing.T) {
	data := []byte("%PDF-1.4\nHello\nWorld\n%%EOF")
	now := time.Date(2026, 3, 1, 12, 30, 45, 0, time.UTC)
	doc := Parse("paper.pdf", "/data/papers/paper.pdf", data, now)

	if doc.Arquivo != "paper.pdf" {
		t.Fatalf("expected arquivo paper.pdf, got %q", doc.Arquivo)
	}
	if doc.CaminhoOriginal != "/data/papers/paper.pdf" {
		t.Fatalf("unexpected caminho_original %q", doc.CaminhoOriginal)
	}
	if doc.DataExtracao != "2026-03-01T12:30:45Z" {
		t.Fatalf("unexpected data_extracao %q", doc.DataExtracao)
	}
	if doc.TotalPaginas != 1 || len(doc.Paginas) != 1 {
		t.Fatalf("expected a single fallback page, got %d", doc.TotalPaginas)
	}
	page := doc.Paginas[0]
	if page.Numero != 1 {
		t.Fatalf("expected page number 1, got %d", page.Numero)
	}
	if page.Texto != "%PDF-1.4\nHello\nWorld\n%%EOF" {
		t.Fatalf("unexpected page text %q", page.Texto)
	}
	if page.Caracteres != utf8.RuneCount(data) {
		t.Fatalf("expected %d characters, got %d", utf8.RuneCount(data), page.Caracteres)
	}
	if doc.TextoCompleto != page.Texto {
		t.Fatalf("unexpected texto_completo %q", doc.TextoCompleto)
	}
	if doc.TotalCaracteres != utf8.RuneCountInString(doc.TextoCompleto) {
		t.Fatalf("unexpected total_caracteres %d", doc.TotalCaracteres)
	}
}

func TestParse_CountsRawRunesButTrimsText(t *testing.T) {
	data := []byte("S\x00u\x01m\x02m\x03ary\x07\n  Conclus\xc3\xa3o  ")
	doc := Parse("notes.pdf", "notes.pdf", data, time.Now())

	page := doc.Paginas[0]
	if page.Texto != "Summary\n  Conclusão" {
		t.Fatalf("unexpected filtered text %q", page.Texto)
	}
	// counted before trimming, control bytes already dropped
	if page.Caracteres != 21 {
		t.Fatalf("expected 21 characters, got %d", page.Caracteres)
	}
	if doc.TotalCaracteres != 19 {
		t.Fatalf("expected 19 total characters, got %d", doc.TotalCaracteres)
	}
}

func TestParse_EmptyPayload(t *testing.T) {
	doc := Parse("empty.pdf", "empty.pdf", nil, time.Now())
	if doc.TotalPaginas != 1 {
		t.Fatalf("expected a single empty page, got %d", doc.TotalPaginas)
	}
	if doc.Paginas[0].Texto != "" || doc.Paginas[0].Caracteres != 0 {
		t.Fatalf("expected empty page, got %+v", doc.Paginas[0])
	}
	if doc.TotalCaracteres != 0 {
		t.Fatalf("expected 0 total characters, got %d", doc.TotalCaracteres)
	}
	if doc.Metadados == nil || len(doc.Metadados) != 0 {
		t.Fatalf("expected empty metadata, got %v", doc.Metadados)
	}
}
