package domain

import (
	"cmp"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Synthetic pseudo-provinces. They are derived, never sourced, except that
// national-only sheets are keyed under NationalTotal by the loaders.
const (
	NationalAverage = "National Average"
	NationalTotal   = "National Total"
)

// provinces is the closed set of jurisdictions, spelled as in ENACOM sheets.
var provinces = []string{
	"Buenos Aires",
	"Capital Federal",
	"Catamarca",
	"Chaco",
	"Chubut",
	"Córdoba",
	"Corrientes",
	"Entre Ríos",
	"Formosa",
	"Jujuy",
	"La Pampa",
	"La Rioja",
	"Mendoza",
	"Misiones",
	"Neuquén",
	"Río Negro",
	"Salta",
	"San Juan",
	"San Luis",
	"Santa Cruz",
	"Santa Fe",
	"Santiago Del Estero",
	"Tierra Del Fuego",
	"Tucumán",
}

var provinceAliases = map[string]string{
	"caba":                            "Capital Federal",
	"ciudad autonoma de buenos aires": "Capital Federal",
	"ciudad de buenos aires":          "Capital Federal",

	"tierra del fuego, antartida e islas del atlantico sur": "Tierra Del Fuego",
}

var provinceIndex = func() map[string]string {
	idx := make(map[string]string, len(provinces)+len(provinceAliases)+2)
	for _, p := range provinces {
		idx[FoldName(p)] = p
	}
	for alias, p := range provinceAliases {
		idx[alias] = p
	}
	idx[FoldName(NationalAverage)] = NationalAverage
	idx[FoldName(NationalTotal)] = NationalTotal
	return idx
}()

// FoldName lowercases, strips diacritics and collapses whitespace, so that
// "Córdoba", "CORDOBA" and " cordoba " compare equal.
func FoldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// CanonicalProvince resolves a user or sheet spelling to its canonical name.
// Synthetic names resolve to themselves.
func CanonicalProvince(name string) (string, error) {
	if p, ok := provinceIndex[FoldName(name)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvince, name)
}

func IsSynthetic(province string) bool {
	return province == NationalAverage || province == NationalTotal
}

// CompareProvinceNames orders names ignoring case and accents, falling back
// to byte order so the result is total.
func CompareProvinceNames(a, b string) int {
	if c := cmp.Compare(FoldName(a), FoldName(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
