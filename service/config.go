package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable holding the config location.
const ConfigEnv = "NEUROTAB_CONFIG"

// Config locates the manuscript project artifacts. Relative entries are
// resolved against Root by Init.
type Config struct {
	Root        string           `yaml:"root"`
	Catalog     string           `yaml:"catalog"`
	Report      string           `yaml:"report"`
	Figures     string           `yaml:"figures"`
	CurrentYear int              `yaml:"currentYear"`
	Extraction  ExtractionConfig `yaml:"extraction"`
	Article     SplitConfig      `yaml:"article"`
	Reviews     SplitConfig      `yaml:"reviews"`
}

// ExtractionConfig defines PDF conversion locations and filters.
type ExtractionConfig struct {
	Source       string   `yaml:"source"`
	Dest         string   `yaml:"dest"`
	Include      []string `yaml:"include"`
	Exclude      []string `yaml:"exclude"`
	MaxSizeBytes int64    `yaml:"max_size_bytes"`
	Workers      int      `yaml:"workers"`
}

// SplitConfig names an extracted JSON document and its split destination.
type SplitConfig struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// LoadConfig reads a YAML config, expanding ~ and file: locations. An empty
// path falls back to the NEUROTAB_CONFIG environment variable; when that is
// unset too, the built-in project layout rooted at the working directory
// applies.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	cfg := &Config{}
	if path != "" {
		expanded, err := expandUserPath(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Init fills missing entries with the manuscript project layout and resolves
// relative locations against the root.
func (c *Config) Init() error {
	if c.Root == "" {
		c.Root = "."
	}
	root, err := expandUserPath(c.Root)
	if err != nil {
		return err
	}
	c.Root = root
	if c.Catalog == "" {
		c.Catalog = "Table1_v12 - Cópia de Página1.csv"
	}
	if c.Report == "" {
		c.Report = "Alterações/RELATORIO_TABELA.txt"
	}
	if c.Figures == "" {
		c.Figures = "Alterações/Figuras"
	}
	if c.CurrentYear == 0 {
		c.CurrentYear = 2026
	}
	if c.Extraction.Source == "" {
		c.Extraction.Source = "."
	}
	if c.Extraction.Dest == "" {
		c.Extraction.Dest = "textos_json"
	}
	if c.Article.Source == "" {
		c.Article.Source = "textos_json/Artigo-Revisado.json"
	}
	if c.Article.Dest == "" {
		c.Article.Dest = "Artigo-Partes"
	}
	if c.Reviews.Source == "" {
		c.Reviews.Source = "textos_json/Altereções-necessárias.json"
	}
	if c.Reviews.Dest == "" {
		c.Reviews.Dest = "Alterações"
	}
	for _, location := range []*string{
		&c.Catalog, &c.Report, &c.Figures,
		&c.Extraction.Source, &c.Extraction.Dest,
		&c.Article.Source, &c.Article.Dest,
		&c.Reviews.Source, &c.Reviews.Dest,
	} {
		resolved, err := c.resolve(*location)
		if err != nil {
			return err
		}
		*location = resolved
	}
	return nil
}

func (c *Config) resolve(location string) (string, error) {
	expanded, err := expandUserPath(location)
	if err != nil {
		return "", err
	}
	if expanded == "" || strings.Contains(expanded, "://") || strings.HasPrefix(expanded, "/") {
		return expanded, nil
	}
	if expanded == "." {
		return c.Root, nil
	}
	return url.Join(c.Root, expanded), nil
}

func expandUserPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return path, nil
	}
	if !strings.HasPrefix(trimmed, "~") && !strings.HasPrefix(trimmed, "file:") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if trimmed == "~" {
		return home, nil
	}
	if strings.HasPrefix(trimmed, "~/") {
		return filepath.Join(home, trimmed[2:]), nil
	}
	if strings.HasPrefix(trimmed, "~") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", path)
	}
	// file: URI forms with an embedded ~
	for _, prefix := range []string{"file://localhost", "file://", "file:"} {
		rest := strings.TrimPrefix(trimmed, prefix)
		if rest == trimmed {
			continue
		}
		rest = strings.TrimLeft(rest, "/")
		if !strings.HasPrefix(rest, "~") {
			return path, nil
		}
		abs := filepath.ToSlash(filepath.Join(home, strings.TrimPrefix(rest, "~")))
		return prefix + "/" + strings.TrimLeft(abs, "/"), nil
	}
	return path, nil
}
