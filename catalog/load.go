package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Load reads a catalog from a local path or any supported URL, picking the
// parser by file extension.
func Load(ctx context.Context, location string) (*Catalog, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", location, err)
	}
	return Parse(location, data)
}

// Parse decodes catalog bytes using the extension of the source name.
// Anything that is not a workbook is read as CSV.
func Parse(source string, data []byte) (*Catalog, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(path.Ext(url.Path(source))) {
	case ".xlsx", ".xlsm":
		rows, err = parseXLSX(data)
	case ".xls":
		rows, err = parseXLS(data)
	default:
		rows, err = parseCSV(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	return FromRows(source, rows), nil
}
