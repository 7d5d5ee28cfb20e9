package option

import (
	"bufio"
	"io"
	"strings"
)

// Options controls which source documents a scan considers.
type Options struct {

	// Exclusions contains patterns of files/directories to skip
	Exclusions []string

	// Inclusions contains patterns of files/directories to keep
	Inclusions []string

	// MaxFileSize is the maximum size of files to process in bytes
	MaxFileSize int
}

// Options returns a slice of Option functions based on the Options fields
func (o *Options) Options() []Option {
	var result []Option
	if o.MaxFileSize > 0 {
		result = append(result, WithMaxFileSize(o.MaxFileSize))
	}
	if o.Exclusions != nil {
		result = append(result, WithExclusionPatterns(o.Exclusions...))
	}
	if o.Inclusions != nil {
		result = append(result, WithInclusionPatterns(o.Inclusions...))
	}
	return result
}

// NewOptions creates a new Options instance with default values
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Exclusions == nil {
		options.Exclusions = getDefaultPatterns()
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithExclusionPatterns sets exclusion patterns
func WithExclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, patterns...)
	}
}

// WithInclusionPatterns adds patterns to include
func WithInclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Inclusions = append(o.Inclusions, patterns...)
	}
}

// WithMaxFileSize sets the maximum processable file size
func WithMaxFileSize(size int) Option {
	return func(o *Options) {
		o.MaxFileSize = size
	}
}

// WithPatternList adds newline-separated patterns from a reader,
// skipping blanks and # comments.
func WithPatternList(reader io.Reader) Option {
	return func(o *Options) {
		if patterns := parsePatterns(reader); len(patterns) > 0 {
			o.Exclusions = append(o.Exclusions, patterns...)
		}
	}
}

// WithDefaultExclusionPatterns adds default exclusion patterns
func WithDefaultExclusionPatterns() Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, getDefaultPatterns()...)
	}
}

// getDefaultPatterns returns artifacts that never hold source documents
func getDefaultPatterns() []string {
	return []string{
		// Directories
		".git/",
		"__MACOSX/",

		// Files
		".DS_Store",
		"Thumbs.db",
		"~$*",
		".~lock*",
		"*.tmp",
		"*.bak",
		"*.swp",
		"*.part",
		"*.crdownload",
	}
}

func parsePatterns(reader io.Reader) []string {
	var patterns []string
	scanner := bufio.NewScanner(reader)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}

	return patterns
}
