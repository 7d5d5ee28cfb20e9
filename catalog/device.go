package catalog

import (
	"strings"
)

// Column names of the device comparison table. Accessors fall back to the
// empty string when a column is absent from the source file.
const (
	ColModel        = "Model"
	ColManufacturer = "Manufacturer"
	ColOrigin       = "Origin"
	ColYear         = "Year of first appearance"
	ColTechnology   = "Technology"
	ColType         = "Type"
	ColChannels     = "Channels"
	ColSamplingRate = "Sampling Rate"
	ColADC          = "ADC resolution"
	ColSensorType   = "Sensor Type"
	ColConnectivity = "Wireless Connectivity"
	ColPrice        = "Price (USD)"
	ColStudies      = "Studies Found"
	ColAuxiliary    = "Auxiliary capabilities"
	ColRawAccess    = "Raw data access"
	ColSync         = "Data Synchronization"
	ColSoftware     = "Bundled Software"
)

// Device is a single catalog row. Cell values stay raw strings; the table
// mixes numbers with annotations such as "> 25000" or "8-16 (dry)".
type Device struct {
	header []string
	cells  map[string]string
}

// Cell returns the raw value of the named column.
func (d *Device) Cell(name string) string {
	return d.cells[name]
}

func (d *Device) Model() string        { return d.cells[ColModel] }
func (d *Device) Manufacturer() string { return d.cells[ColManufacturer] }
func (d *Device) Origin() string       { return d.cells[ColOrigin] }
func (d *Device) Year() string         { return d.cells[ColYear] }
func (d *Device) Technology() string   { return d.cells[ColTechnology] }
func (d *Device) Type() string         { return d.cells[ColType] }
func (d *Device) Channels() string     { return d.cells[ColChannels] }
func (d *Device) SamplingRate() string { return d.cells[ColSamplingRate] }
func (d *Device) ADC() string          { return d.cells[ColADC] }
func (d *Device) SensorType() string   { return d.cells[ColSensorType] }
func (d *Device) Connectivity() string { return d.cells[ColConnectivity] }
func (d *Device) Price() string        { return d.cells[ColPrice] }
func (d *Device) Studies() string      { return d.cells[ColStudies] }
func (d *Device) Auxiliary() string    { return d.cells[ColAuxiliary] }
func (d *Device) RawAccess() string    { return d.cells[ColRawAccess] }
func (d *Device) Sync() string         { return d.cells[ColSync] }
func (d *Device) Software() string     { return d.cells[ColSoftware] }

// Label returns the first line of the model cell truncated to 40 runes,
// used wherever a device is listed one per line.
func (d *Device) Label() string {
	name := d.Model()
	if idx := strings.IndexByte(name, '\n'); idx != -1 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > 40 {
		return string(runes[:40])
	}
	return name
}

// RowText joins every cell in column order, lowercased, for whole-row
// keyword scans.
func (d *Device) RowText() string {
	var b strings.Builder
	for i, col := range d.header {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.cells[col])
	}
	return strings.ToLower(b.String())
}

// Catalog is the ordered device list loaded from one source file.
type Catalog struct {
	Source  string
	Columns []string
	Devices []*Device
}

// Len returns the number of devices.
func (c *Catalog) Len() int {
	return len(c.Devices)
}

// FromRows builds a catalog from raw sheet rows. The first row is the
// header; duplicate column names keep the first occurrence.
func FromRows(source string, rows [][]string) *Catalog {
	cat := &Catalog{Source: source}
	if len(rows) == 0 {
		return cat
	}
	seen := map[string]bool{}
	for _, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		cat.Columns = append(cat.Columns, name)
	}
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		device := &Device{header: cat.Columns, cells: map[string]string{}}
		for i, name := range rows[0] {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := device.cells[name]; ok {
				continue
			}
			if i < len(row) {
				device.cells[name] = row[i]
			}
		}
		cat.Devices = append(cat.Devices, device)
	}
	return cat
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
