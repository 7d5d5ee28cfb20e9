package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/viant/afs"
	"github.com/xuri/excelize/v2"
)

func TestLoad_CSV(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	csvData := "\uFEFFModel,Channels,Price (USD)\nMuse 2,4,249\nDSI-24,\"21, plus 3 aux\",\"$21,000\"\n"
	location := "mem://localhost/catalog/table.csv"
	if err := fs.Upload(ctx, location, 0644, strings.NewReader(csvData)); err != nil {
		t.Fatalf("upload: %v", err)
	}

	cat, err := Load(ctx, location)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 devices, got %d", cat.Len())
	}
	if got := cat.Devices[0].Model(); got != "Muse 2" {
		t.Fatalf("BOM not stripped or wrong model: %q", got)
	}
	price, ok := cat.Devices[1].PriceUSD()
	if !ok || price != 21000 {
		t.Fatalf("expected price 21000, got %v ok=%v", price, ok)
	}
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Model", "Technology", "Channels"},
		{"NIRSport 2", "fNIRS", "64"},
		{"Muse S", "EEG", "4"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	cat, err := Parse("table.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 devices, got %d", cat.Len())
	}
	if got := cat.Devices[0].Technology(); got != "fNIRS" {
		t.Fatalf("expected fNIRS, got %q", got)
	}
	channels, ok := cat.Devices[0].ChannelCount()
	if !ok || channels != 64 {
		t.Fatalf("expected 64 channels, got %d ok=%v", channels, ok)
	}
}

func TestParse_BadWorkbook(t *testing.T) {
	if _, err := Parse("table.xlsx", []byte("not a workbook")); err == nil {
		t.Fatalf("expected error for corrupt workbook")
	}
}
