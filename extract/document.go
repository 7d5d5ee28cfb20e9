package extract

import "time"

// Document mirrors the JSON written for each converted PDF. The field names
// are the wire format the section splitters consume and must stay stable.
type Document struct {
	Arquivo         string            `json:"arquivo"`
	CaminhoOriginal string            `json:"caminho_original"`
	DataExtracao    string            `json:"data_extracao"`
	TotalPaginas    int               `json:"total_paginas"`
	Metadados       map[string]string `json:"metadados"`
	Paginas         []Page            `json:"paginas"`
	TextoCompleto   string            `json:"texto_completo"`
	TotalCaracteres int               `json:"total_caracteres"`
}

// Page holds the text extracted from a single page. Texto is trimmed while
// Caracteres counts the runes of the raw page text.
type Page struct {
	Numero     int    `json:"numero"`
	Texto      string `json:"texto"`
	Caracteres int    `json:"caracteres"`
}

// Summary describes one conversion run, persisted as SummaryFile next to the
// converted documents.
type Summary struct {
	DataProcessamento string        `json:"data_processamento"`
	TotalArquivos     int           `json:"total_arquivos"`
	Arquivos          []SummaryItem `json:"arquivos"`
}

// SummaryItem pairs a source PDF with its JSON artifact.
type SummaryItem struct {
	PDF        string `json:"pdf"`
	JSON       string `json:"json"`
	Paginas    int    `json:"paginas"`
	Caracteres int    `json:"caracteres"`
}

// Entry records the state of a converted PDF so unchanged sources can be
// skipped on the next run.
type Entry struct {
	ID         string    `json:"id"`
	ModTime    time.Time `json:"modTime"`
	Hash       uint64    `json:"hash"`
	JSON       string    `json:"json"`
	Paginas    int       `json:"paginas"`
	Caracteres int       `json:"caracteres"`
}
