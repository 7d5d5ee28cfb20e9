package sections

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/neurotab/neurotab/extract"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// CommentsDir holds the individual reviewer comments under the reviews
// output location.
const CommentsDir = "Comentarios_Individuais"

// Splitter writes article and review segments as text artifacts.
type Splitter struct {
	fs   afs.Service
	logf func(format string, args ...interface{})
}

// Option customises the splitter.
type Option func(*Splitter)

// WithLogf routes progress output.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(s *Splitter) {
		if logf != nil {
			s.logf = logf
		}
	}
}

// New creates a splitter backed by the default filesystem service.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		fs: afs.New(),
		logf: func(format string, args ...interface{}) {
			fmt.Printf(format, args...)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SplitArticleFile reads an extraction JSON and writes one text file per
// manuscript section into destURL.
func (s *Splitter) SplitArticleFile(ctx context.Context, jsonURL, destURL string) ([]Section, error) {
	s.banner("📄 DIVISOR DE SEÇÕES DO ARTIGO", jsonURL, destURL)

	text, err := s.loadText(ctx, jsonURL)
	if err != nil {
		return nil, err
	}
	result := SplitArticle(text)
	for _, section := range result {
		content := section.Body(text)
		if section.Order == 0 {
			content = section.Text(text)
		}
		if err := s.upload(ctx, url.Join(destURL, section.FileName()), content); err != nil {
			return nil, err
		}
		if section.Order > 0 {
			s.logf("✅ Criado: %s (%s caracteres)\n", section.FileName(), group(utf8.RuneCountInString(content)))
		}
	}
	s.logf("\n%s\n", strings.Repeat("-", 60))
	s.logf("\n✨ Total: %d seções criadas!\n", len(result))
	return result, nil
}

// SplitReviewsFile reads an extraction JSON, writes the reviewer blocks into
// destURL and every individual comment under its CommentsDir folder.
func (s *Splitter) SplitReviewsFile(ctx context.Context, jsonURL, destURL string) ([]Section, error) {
	s.banner("📋 DIVISOR DE COMENTÁRIOS DE REVISORES", jsonURL, destURL)

	text, err := s.loadText(ctx, jsonURL)
	if err != nil {
		return nil, err
	}
	result := SplitReviews(text)
	for _, section := range result {
		content := section.Text(text)
		if err := s.upload(ctx, url.Join(destURL, section.FileName()), content); err != nil {
			return nil, err
		}
		s.logf("✅ Criado: %s (%s caracteres)\n", section.FileName(), group(utf8.RuneCountInString(content)))
	}
	for _, comment := range SplitComments(text) {
		if err := s.upload(ctx, url.Join(destURL, CommentsDir, comment.Code+".txt"), comment.Text); err != nil {
			return nil, err
		}
		s.logf("   📝 %s.txt\n", comment.Code)
	}
	s.logf("\n%s\n", strings.Repeat("-", 60))
	s.logf("\n✨ Divisão concluída!\n")
	return result, nil
}

func (s *Splitter) banner(title, jsonURL, destURL string) {
	rule := strings.Repeat("=", 60)
	s.logf("%s\n", rule)
	s.logf("%s\n", title)
	s.logf("%s\n", rule)
	s.logf("\n📥 Entrada: %s\n", jsonURL)
	s.logf("📤 Saída:   %s\n\n", destURL)
	s.logf("%s\n\n", strings.Repeat("-", 60))
}

// loadText pulls the full document text out of an extraction JSON.
func (s *Splitter) loadText(ctx context.Context, jsonURL string) (string, error) {
	data, err := s.fs.DownloadWithURL(ctx, jsonURL)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", jsonURL, err)
	}
	var doc extract.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", jsonURL, err)
	}
	return doc.TextoCompleto, nil
}

func (s *Splitter) upload(ctx context.Context, URL, content string) error {
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to upload %s: %w", URL, err)
	}
	return nil
}

// group renders n with thousands separators.
func group(n int) string {
	text := strconv.Itoa(n)
	out := make([]byte, 0, len(text)+len(text)/3)
	for i := 0; i < len(text); i++ {
		if i > 0 && (len(text)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, text[i])
	}
	return string(out)
}
