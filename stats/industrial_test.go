package stats

import (
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func TestIndustrial(t *testing.T) {
	cat := testCatalog(t, [][]string{
		{catalog.ColModel, catalog.ColType, catalog.ColSensorType, catalog.ColConnectivity, catalog.ColAuxiliary, catalog.ColPrice},
		{"Focus band", "EEG Headband", "Dry", "Bluetooth 5.0", "3-axis accelerometer, PPG heart rate", "---"},
		{"Lab cap", "Electrode cap", "Wet (gel)", "Wi-Fi + USB", "", "4500"},
		{"Patch", "Adhesive patch", "Semi-dry", "RF 2.4 GHz", "Temp sensor", ""},
		{"Bench amp", "---", "", "Wired USB", "", "12000"},
		{"Ear bud", "In-Ear sensor", "Dry hybrid", "BLE", "", "499"},
		{"Mind set", "Gaming headset", "Dry", "Bluetooth", "", "$299"},
	})

	b := Industrial(cat)
	if b.Total != 6 {
		t.Fatalf("total=%d", b.Total)
	}

	wantForms := []CountItem{
		{"---", 1}, {"Adhesive", 1}, {"Cap", 1}, {"Headband", 1}, {"Headset", 1}, {"In-Ear", 1},
	}
	if !equalCounts(b.FormFactors, wantForms) {
		t.Fatalf("forms=%+v", b.FormFactors)
	}
	wantSensors := []CountItem{
		{"Dry", 2}, {"Semi-Dry", 1}, {"Wet (gel/saline)", 1}, {"Hybrid", 1}, {"Unknown", 1},
	}
	if !equalCounts(b.Sensors, wantSensors) {
		t.Fatalf("sensors=%+v", b.Sensors)
	}
	// The wired bench amp counts toward no transport; Unknown stays for
	// blank cells only.
	wantWireless := []CountItem{
		{"Bluetooth/BLE", 3}, {"Wi-Fi", 1}, {"RF 2.4 GHz", 1}, {"Unknown", 0},
	}
	if !equalCounts(b.Wireless, wantWireless) {
		t.Fatalf("wireless=%+v", b.Wireless)
	}
	wantAux := []CountItem{
		{"Heart Rate/HRV/PPG", 1}, {"IMU/Accelerometer", 1}, {"Temperature", 1},
		{"EMG", 0}, {"EOG (Eye)", 0}, {"GSR/EDA", 0}, {"Respiration", 0}, {"SpO2", 0},
	}
	if !equalCounts(b.Auxiliary, wantAux) {
		t.Fatalf("auxiliary=%+v", b.Auxiliary)
	}

	// The semi-dry patch is RF-only and the in-ear bud is neither wearable
	// nor physio-equipped, so two devices fit the profile.
	if len(b.Profiles) != 2 {
		t.Fatalf("profiles=%+v", b.Profiles)
	}
	if b.Profiles[0].Model != "Focus band" || b.Profiles[0].Type != "Eeg Headband" || b.Profiles[0].Price != "---" {
		t.Fatalf("profile=%+v", b.Profiles[0])
	}
	if b.Profiles[1].Model != "Mind set" || b.Profiles[1].Type != "Gaming Headset" || b.Profiles[1].Price != "$299" {
		t.Fatalf("profile=%+v", b.Profiles[1])
	}
}

func TestSimplifyForm(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "known factor", value: "Wireless EEG headset", want: "Headset"},
		{name: "first match wins", value: "Headset with headband strap", want: "Headset"},
		{name: "free text kept", value: "Sleep mask", want: "Sleep mask"},
		{name: "placeholder kept", value: "---", want: "---"},
		{name: "blank dropped", value: "  ", want: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := simplifyForm(testCase.value); got != testCase.want {
				t.Fatalf("got %q want %q", got, testCase.want)
			}
		})
	}
}

func TestSensorClass(t *testing.T) {
	testCases := []struct {
		name  string
		value string
		want  string
	}{
		{name: "dry", value: "Dry polymer", want: "Dry"},
		{name: "semi beats dry", value: "Semi-dry sponge", want: "Semi-Dry"},
		{name: "saline", value: "Saline-soaked", want: "Wet (gel/saline)"},
		{name: "hybrid beats dry", value: "Hybrid dry", want: "Hybrid"},
		{name: "optodes", value: "fNIRS optodes", want: "Optodes (fNIRS)"},
		{name: "unknown", value: "Capacitive", want: "Unknown"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := sensorClass(testCase.value); got != testCase.want {
				t.Fatalf("got %q want %q", got, testCase.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	if got := titleCase("in-ear sensor"); got != "In-Ear Sensor" {
		t.Fatalf("got %q", got)
	}
	if got := titleCase("eeg/fnirs cap v2"); got != "Eeg/Fnirs Cap V2" {
		t.Fatalf("got %q", got)
	}
}
