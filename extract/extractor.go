package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/neurotab/neurotab/extract/cache"
	"github.com/neurotab/neurotab/matching"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

const (
	// SummaryFile is the run manifest written next to the converted documents.
	SummaryFile = "_resumo_extracao.json"

	cacheFile      = "cache_extract.json"
	defaultWorkers = 4
)

// Extractor converts the PDFs of a source location into JSON documents.
type Extractor struct {
	fs      afs.Service
	matcher *matching.Manager
	workers int
	now     func() time.Time
	cache   *cache.Map[string, Entry]
	logf    func(format string, args ...interface{})
}

// Option customises the extractor.
type Option func(*Extractor)

// WithMatcher installs include/exclude rules for the source scan.
func WithMatcher(matcher *matching.Manager) Option {
	return func(e *Extractor) {
		if matcher != nil {
			e.matcher = matcher
		}
	}
}

// WithWorkers caps how many PDFs are converted concurrently.
func WithWorkers(workers int) Option {
	return func(e *Extractor) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithLogf routes progress output.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(e *Extractor) {
		if logf != nil {
			e.logf = logf
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an extractor backed by the default filesystem service.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		fs:      afs.New(),
		matcher: matching.New(),
		workers: defaultWorkers,
		now:     time.Now,
		cache:   cache.NewMap[string, Entry](),
		logf: func(format string, args ...interface{}) {
			fmt.Printf(format, args...)
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type result struct {
	object  storage.Object
	item    *SummaryItem
	skipped bool
	err     error
}

// Run converts every PDF directly under sourceURL, writing one JSON document
// per file plus the run summary into destURL. Unchanged sources with an
// existing artifact are skipped. Per-file failures are reported and do not
// abort the run.
func (e *Extractor) Run(ctx context.Context, sourceURL, destURL string) (*Summary, error) {
	started := e.now()
	banner := strings.Repeat("=", 60)
	e.logf("%s\n", banner)
	e.logf("🔄 EXTRATOR DE PDF PARA JSON\n")
	e.logf("%s\n", banner)
	e.logf("\n📥 Entrada: %s\n", sourceURL)
	e.logf("📤 Saída:   %s\n\n", destURL)
	e.logf("%s\n\n", strings.Repeat("-", 60))

	objects, err := e.fs.List(ctx, sourceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", sourceURL, err)
	}
	var pdfs []storage.Object
	for _, object := range objects {
		if object.IsDir() {
			continue
		}
		if !strings.EqualFold(path.Ext(object.Name()), ".pdf") {
			continue
		}
		if e.matcher.IsExcluded(url.Path(object.URL()), int(object.Size())) {
			continue
		}
		pdfs = append(pdfs, object)
	}
	sort.Slice(pdfs, func(i, j int) bool {
		return pdfs[i].Name() < pdfs[j].Name()
	})

	summary := &Summary{DataProcessamento: started.Format(time.RFC3339)}
	stats := statsFromContext(ctx)
	if stats != nil {
		stats.Found = len(pdfs)
	}
	if len(pdfs) == 0 {
		e.logf("⚠️  Nenhum arquivo PDF encontrado em: %s\n", sourceURL)
		return summary, nil
	}
	e.logf("📂 Encontrados %d arquivo(s) PDF\n\n", len(pdfs))

	e.loadCache(ctx, destURL)

	results := make([]*result, len(pdfs))
	limiter := make(chan struct{}, e.workers)
	var wg sync.WaitGroup
	for i, object := range pdfs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		wg.Add(1)
		limiter <- struct{}{}
		go func(index int, object storage.Object) {
			defer wg.Done()
			defer func() { <-limiter }()
			results[index] = e.convert(ctx, object, destURL)
		}(i, object)
	}
	wg.Wait()

	converted := 0
	for _, res := range results {
		e.logf("📄 Processando: %s\n", res.object.Name())
		if res.err != nil {
			e.logf("   ❌ Erro: %v\n\n", res.err)
			if stats != nil {
				stats.Failed++
			}
			continue
		}
		if res.skipped {
			e.logf("   ♻️  Inalterado: %s\n", res.item.JSON)
			if stats != nil {
				stats.Skipped++
			}
		} else {
			e.logf("   ✅ Salvo: %s\n", res.item.JSON)
			converted++
			if stats != nil {
				stats.Converted++
			}
		}
		e.logf("   📊 %d páginas, %s caracteres\n\n", res.item.Paginas, group(res.item.Caracteres))
		summary.Arquivos = append(summary.Arquivos, *res.item)
	}
	summary.TotalArquivos = len(summary.Arquivos)

	e.logf("%s\n", strings.Repeat("-", 60))
	e.logf("\n✨ Processamento concluído!\n")
	e.logf("   Total: %d arquivo(s) convertido(s)\n", converted)

	if err := e.persistCache(ctx, destURL); err != nil {
		return nil, err
	}
	if len(summary.Arquivos) > 0 {
		payload, err := marshalJSON(summary)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal summary: %w", err)
		}
		URL := url.Join(destURL, SummaryFile)
		if err := e.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(string(payload))); err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", URL, err)
		}
		e.logf("   Resumo salvo em: %s\n", SummaryFile)
	}
	return summary, nil
}

// convert processes a single PDF and uploads its JSON artifact.
func (e *Extractor) convert(ctx context.Context, object storage.Object, destURL string) *result {
	res := &result{object: object}
	sourcePath := url.Path(object.URL())
	data, err := e.fs.Download(ctx, object)
	if err != nil {
		res.err = fmt.Errorf("failed to download %s: %w", sourcePath, err)
		return res
	}

	hash, err := cache.Hash(data)
	if err != nil || hash == 0 {
		hash = uint64(object.ModTime().Unix())
	}
	name := object.Name()
	jsonName := strings.TrimSuffix(name, path.Ext(name)) + ".json"
	jsonURL := url.Join(destURL, jsonName)

	if prev, ok := e.cache.Get(sourcePath); ok && prev.Hash == hash {
		if exists, _ := e.fs.Exists(ctx, jsonURL); exists {
			res.skipped = true
			res.item = &SummaryItem{PDF: name, JSON: jsonName, Paginas: prev.Paginas, Caracteres: prev.Caracteres}
			return res
		}
	}

	doc := Parse(name, sourcePath, data, e.now())
	payload, err := marshalJSON(doc)
	if err != nil {
		res.err = fmt.Errorf("failed to marshal %s: %w", name, err)
		return res
	}
	if err := e.fs.Upload(ctx, jsonURL, file.DefaultFileOsMode, strings.NewReader(string(payload))); err != nil {
		res.err = fmt.Errorf("failed to upload %s: %w", jsonURL, err)
		return res
	}
	e.cache.Set(sourcePath, &Entry{
		ID:         sourcePath,
		ModTime:    object.ModTime(),
		Hash:       hash,
		JSON:       jsonName,
		Paginas:    doc.TotalPaginas,
		Caracteres: doc.TotalCaracteres,
	})
	res.item = &SummaryItem{PDF: name, JSON: jsonName, Paginas: doc.TotalPaginas, Caracteres: doc.TotalCaracteres}
	return res
}

// loadCache restores change-detection state left by a previous run.
func (e *Extractor) loadCache(ctx context.Context, destURL string) {
	URL := url.Join(destURL, cacheFile)
	exists, _ := e.fs.Exists(ctx, URL)
	if !exists {
		return
	}
	data, err := e.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return
	}
	_ = e.cache.Load(data)
}

func (e *Extractor) persistCache(ctx context.Context, destURL string) error {
	data, err := e.cache.Data()
	if err != nil {
		return fmt.Errorf("failed to marshal extraction cache: %w", err)
	}
	URL := url.Join(destURL, cacheFile)
	return e.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(string(data)))
}

// marshalJSON renders v the way the downstream consumers expect, with two
// space indentation and raw UTF-8.
func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
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
