package extract

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// infoKeys lists the trailer Info entries carried into the output metadata.
var infoKeys = []string{"Title", "Author", "Subject", "Keywords", "Creator", "Producer", "CreationDate", "ModDate"}

// Parse converts one PDF payload into its Document. name is the source base
// name and origin the full source location recorded in the output. Payloads
// the PDF reader cannot parse are reduced to printable runes and returned as
// a single page.
func Parse(name, origin string, data []byte, now time.Time) *Document {
	doc := &Document{
		Arquivo:         name,
		CaminhoOriginal: origin,
		DataExtracao:    now.Format(time.RFC3339),
		Metadados:       map[string]string{},
	}
	readPages(doc, data)
	if len(doc.Paginas) == 0 {
		text := extractPrintableText(data)
		doc.Paginas = []Page{{
			Numero:     1,
			Texto:      strings.TrimSpace(string(text)),
			Caracteres: utf8.RuneCount(text),
		}}
	}
	doc.TotalPaginas = len(doc.Paginas)
	texts := make([]string, len(doc.Paginas))
	for i, page := range doc.Paginas {
		texts[i] = page.Texto
	}
	doc.TextoCompleto = strings.Join(texts, "\n\n")
	doc.TotalCaracteres = utf8.RuneCountInString(doc.TextoCompleto)
	return doc
}

// readPages extracts page texts and metadata. Malformed cross reference
// tables make the reader panic, so partial results are kept on recovery.
func readPages(doc *Document, data []byte) {
	defer func() {
		_ = recover()
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return
	}
	doc.Metadados = readInfo(reader)
	total := reader.NumPage()
	for num := 1; num <= total; num++ {
		text := ""
		if page := reader.Page(num); !page.V.IsNull() {
			text, _ = page.GetPlainText(nil)
		}
		doc.Paginas = append(doc.Paginas, Page{
			Numero:     num,
			Texto:      strings.TrimSpace(text),
			Caracteres: utf8.RuneCountInString(text),
		})
	}
}

func readInfo(reader *pdf.Reader) map[string]string {
	result := map[string]string{}
	info := reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return result
	}
	for _, key := range infoKeys {
		value := info.Key(key)
		text := ""
		switch value.Kind() {
		case pdf.String:
			text = value.Text()
		case pdf.Name:
			text = value.Name()
		}
		if text = strings.TrimSpace(text); text != "" {
			result[key] = text
		}
	}
	return result
}

func extractPrintableText(in []byte) []byte {
	var out bytes.Buffer
	for len(in) > 0 {
		r, size := utf8.DecodeRune(in)
		if r == utf8.RuneError && size == 1 {
			b := in[0]
			if isPrintableASCII(b) {
				out.WriteByte(b)
			}
			in = in[1:]
			continue
		}
		in = in[size:]
		if isPrintableRune(r) {
			out.WriteRune(r)
		}
	}
	return out.Bytes()
}

func isPrintableASCII(b byte) bool {
	return b == '\n' || b == '\r' || b == '\t' || (b >= 32 && b < 127)
}

func isPrintableRune(r rune) bool {
	if r == '\n' || r == '\r' || r == '\t' {
		return true
	}
	if r >= 32 && r < 127 {
		return true
	}
	if r >= 127 && r <= 0x10FFFF {
		return true
	}
	return false
}
