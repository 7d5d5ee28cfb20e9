package matching

import (
	"path/filepath"
	"strings"

	"github.com/neurotab/neurotab/matching/option"
	"github.com/viant/afs/url"
)

// Manager decides which files a document scan processes.
type Manager struct {
	options *option.Options
}

// New creates a manager with the given options
func New(opts ...option.Option) *Manager {
	return &Manager{options: option.NewOptions(opts...)}
}

// IsExcluded checks if a location should be skipped based on the patterns
func (m *Manager) IsExcluded(location string, size int) bool {
	if m.options.MaxFileSize > 0 {
		if size > m.options.MaxFileSize {
			return true
		}
	}

	path := url.Path(location)
	path = filepath.ToSlash(path)

	if len(m.options.Inclusions) > 0 {
		if !m.isIncluded(path) {
			return true
		}
	}

	for _, pattern := range m.options.Exclusions {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if m.matches(path, pattern) {
			return true
		}
	}

	return false
}

func (m *Manager) matches(path string, pattern string) bool {
	// Directory patterns end with a slash and match any path segment
	if strings.HasSuffix(pattern, "/") {
		return strings.Contains("/"+path, "/"+pattern)
	}

	baseName := filepath.Base(path)
	if matched, _ := filepath.Match(pattern, baseName); matched {
		return true
	}
	if matched, _ := filepath.Match(strings.TrimPrefix(pattern, "/"), path); matched {
		return true
	}
	return pattern == baseName || strings.HasSuffix(pattern, "/"+baseName)
}

func (m *Manager) isIncluded(path string) bool {
	baseName := filepath.Base(path)
	for _, pattern := range m.options.Inclusions {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if matched, _ := filepath.Match(pattern, baseName); matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}
