package domain_test

import (
	"errors"
	"slices"
	"testing"

	"telecom-metrics-service/internal/telecom/core/domain"
)

func TestCanonicalProvince(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Córdoba", "Córdoba"},
		{"CORDOBA", "Córdoba"},
		{"  cordoba ", "Córdoba"},
		{"tucuman", "Tucumán"},
		{"santiago del estero", "Santiago Del Estero"},
		{"CABA", "Capital Federal"},
		{"Ciudad Autónoma de Buenos Aires", "Capital Federal"},
		{"national average", domain.NationalAverage},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.CanonicalProvince(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCanonicalProvince_Unknown(t *testing.T) {
	if _, err := domain.CanonicalProvince("Atlantis"); !errors.Is(err, domain.ErrUnknownProvince) {
		t.Fatalf("expected ErrUnknownProvince, got %v", err)
	}
}

func TestCanonicalProvince_ClosedSet(t *testing.T) {
	jurisdictions := []string{
		"Buenos Aires", "Capital Federal", "Catamarca", "Chaco", "Chubut", "Córdoba",
		"Corrientes", "Entre Ríos", "Formosa", "Jujuy", "La Pampa", "La Rioja",
		"Mendoza", "Misiones", "Neuquén", "Río Negro", "Salta", "San Juan",
		"San Luis", "Santa Cruz", "Santa Fe", "Santiago Del Estero", "Tierra Del Fuego", "Tucumán",
	}
	if !slices.IsSortedFunc(jurisdictions, domain.CompareProvinceNames) {
		t.Fatalf("jurisdictions not sorted: %v", jurisdictions)
	}

	for _, p := range jurisdictions {
		got, err := domain.CanonicalProvince(p)
		if err != nil || got != p {
			t.Fatalf("%s: expected itself, got %q (err=%v)", p, got, err)
		}
		if domain.IsSynthetic(p) {
			t.Fatalf("%s reported as synthetic", p)
		}
	}
}

func TestCompareProvinceNames_IgnoresAccents(t *testing.T) {
	if domain.CompareProvinceNames("Córdoba", "Corrientes") >= 0 {
		t.Fatalf("expected Córdoba < Corrientes")
	}
	if domain.CompareProvinceNames("Río Negro", "Rio Negro") == 0 {
		t.Fatalf("expected a total order between distinct spellings")
	}
}
