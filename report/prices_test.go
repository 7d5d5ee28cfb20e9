package report

import (
	"strings"
	"testing"

	"github.com/neurotab/neurotab/catalog"
)

func TestPrices(t *testing.T) {
	cat := catalog.FromRows("test", [][]string{
		{catalog.ColModel, catalog.ColPrice},
		{"Starter", "$199"},
		{"Hobby", "450"},
		{"Campus", "$1,500"},
		{"Lab", "4,999"},
		{"Flagship", "> 25000"},
		{"Unlisted", "Contact vendor"},
		{"Unlabeled", "---"},
	})
	got := Prices(cat)

	wantLines := []string{
		"Total de dispositivos: 7\n",
		"Dispositivos com preço: 5\n",
		"Dispositivos sem preço: 2\n",
		"DISTRIBUIÇÃO DE PREÇOS",
		"< $200          |  1 dispositivos ( 20.0%) ██████████",
		"$500 - $1000    |  0 dispositivos (  0.0%) ",
		"> $10000        |  1 dispositivos ( 20.0%) ██████████",
		"📗 DISPOSITIVOS < $500:\n   $199 - Starter\n   $450 - Hobby\n",
		"📙 DISPOSITIVOS $500 - $2000:\n   $1,500 - Campus\n",
		"📕 DISPOSITIVOS >= $2000:\n   $4,999 - Lab\n   $25,000 - Flagship\n",
		"Mínimo:  $199\n",
		"Máximo:  $25,000\n",
		"Média:   $6,430\n",
		"Mediana: $1,500\n",
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q\n%s", want, got)
		}
	}
}

func TestMoney(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "small", value: 99, want: "99"},
		{name: "thousands", value: 1500, want: "1,500"},
		{name: "rounded", value: 774.4, want: "774"},
		{name: "millions", value: 1234567, want: "1,234,567"},
		{name: "zero", value: 0, want: "0"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if got := money(testCase.value); got != testCase.want {
				t.Fatalf("got %q want %q", got, testCase.want)
			}
		})
	}
}

func TestBar(t *testing.T) {
	if got := bar(20); got != "██████████" {
		t.Fatalf("got %q", got)
	}
	if got := bar(1.9); got != "" {
		t.Fatalf("got %q", got)
	}
}
