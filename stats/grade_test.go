package stats

import (
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name      string
		auxiliary string
		price     string
		channels  string
		sensor    string
		want      Grade
	}{
		{name: "fda marker wins", auxiliary: "FDA cleared, SpO2", price: "99", channels: "4", sensor: "Dry", want: GradeClinical},
		{name: "ce mark", auxiliary: "CE Mark Class IIa", want: GradeClinical},
		{name: "expensive is research", price: "25000", channels: "8", want: GradeResearch},
		{name: "dense montage is research", price: "300", channels: "64", want: GradeResearch},
		{name: "wet gel is research", price: "900", channels: "12", sensor: "Wet (gel)", want: GradeResearch},
		{name: "cheap is consumer", price: "249", channels: "14", want: GradeConsumer},
		{name: "sparse montage is consumer", price: "1500", channels: "4", want: GradeConsumer},
		{name: "dry electrodes are consumer", price: "1200", channels: "14", sensor: "Dry polymer", want: GradeConsumer},
		{name: "semi-dry is consumer", sensor: "Semi-dry sponge", want: GradeConsumer},
		{name: "default is research", price: "1000", channels: "12", sensor: "Optodes", want: GradeResearch},
		{name: "no data defaults to research", want: GradeResearch},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			cat := testCatalog(t, [][]string{
				{catalog.ColModel, catalog.ColAuxiliary, catalog.ColPrice, catalog.ColChannels, catalog.ColSensorType},
				{"Probe", testCase.auxiliary, testCase.price, testCase.channels, testCase.sensor},
			})
			if got := Classify(cat.Devices[0]); got != testCase.want {
				t.Fatalf("got %s want %s", got, testCase.want)
			}
		})
	}
}

func TestClassifyAll(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColAuxiliary, catalog.ColPrice, catalog.ColChannels},
		{"Lab rig", "", "30000", "128"},
		{"Headband", "", "299", "4"},
		{"Clinic cap", "FDA 510(k)", "12000", "32"},
	})
	b := ClassifyAll(cat)
	if b.Total != 3 {
		t.Fatalf("total=%d", b.Total)
	}
	if b.Counts[GradeResearch] != 1 || b.Counts[GradeConsumer] != 1 || b.Counts[GradeClinical] != 1 {
		t.Fatalf("counts=%v", b.Counts)
	}
	if b.Devices[2].Grade != GradeClinical {
		t.Fatalf("devices=%+v", b.Devices)
	}
	if !almostEqual(b.Pct(GradeClinical), 100.0/3) {
		t.Fatalf("pct=%v", b.Pct(GradeClinical))
	}
}
