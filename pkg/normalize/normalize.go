// Package normalize ofrece normalización de texto para búsquedas: sin tildes
// y en minúsculas, de modo que "Pérez" y "perez" coincidan.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // elimina marcas diacríticas combinadas
	norm.NFC,
)

// Fold devuelve s en minúsculas y sin marcas diacríticas.
// Si la transformación falla (entrada no UTF-8 válida), devuelve s en minúsculas.
func Fold(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Contains reporta si needle aparece dentro de haystack ignorando tildes y mayúsculas.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
