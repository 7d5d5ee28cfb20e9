package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIFlow_ExtractSplitReport(t *testing.T) {
	projectDir := t.TempDir()
	csvData := "Model,Year of first appearance,Technology,Channels,Price (USD),Studies Found,Wireless Connectivity\n" +
		"Muse 2,2018,EEG,4,249,60,Bluetooth\n"
	if err := os.WriteFile(filepath.Join(projectDir, "Table1_v12 - Cópia de Página1.csv"), []byte(csvData), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	article := "Submitted Survey\n\nAbstract\nShort overview.\n\nConclusion\nWrap.\n"
	if err := os.WriteFile(filepath.Join(projectDir, "Artigo-Revisado.pdf"), []byte(article), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	configPath := filepath.Join(projectDir, "neurotab.yaml")
	if err := os.WriteFile(configPath, []byte("root: "+projectDir+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	extractCmd([]string{"--config", configPath})
	if _, err := os.Stat(filepath.Join(projectDir, "textos_json", "Artigo-Revisado.json")); err != nil {
		t.Fatalf("extracted json missing: %v", err)
	}

	splitCmd("article", []string{"--config", configPath})
	data, err := os.ReadFile(filepath.Join(projectDir, "Artigo-Partes", "01_Abstract.txt"))
	if err != nil {
		t.Fatalf("abstract section missing: %v", err)
	}
	if string(data) != "Short overview." {
		t.Fatalf("abstract content: %q", data)
	}

	reportCmd([]string{"--config", configPath})
	report, err := os.ReadFile(filepath.Join(projectDir, "Alterações", "RELATORIO_TABELA.txt"))
	if err != nil {
		t.Fatalf("report missing: %v", err)
	}
	if !strings.Contains(string(report), "RELATÓRIO DE ANÁLISE DA TABELA DE DISPOSITIVOS") {
		t.Fatalf("report header missing:\n%s", report)
	}
}

func TestParseCSV(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "  ", nil},
		{"single", "*.pdf", []string{"*.pdf"}},
		{"spaced", " *.pdf , draft* ,", []string{"*.pdf", "draft*"}},
	}
	for _, tc := range cases {
		got := parseCSV(tc.value)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: parseCSV(%q)=%v, want %v", tc.name, tc.value, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: parseCSV(%q)=%v, want %v", tc.name, tc.value, got, tc.want)
			}
		}
	}
}

func TestResolveLocation(t *testing.T) {
	if got := resolveLocation("flag", "config"); got != "flag" {
		t.Fatalf("override should win, got %q", got)
	}
	if got := resolveLocation("", "config"); got != "config" {
		t.Fatalf("configured value should apply, got %q", got)
	}
}
