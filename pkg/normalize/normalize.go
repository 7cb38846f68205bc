// Package normalize provee la canonicalización de nombres usada para
// comparaciones únicas: sin tildes, sin mayúsculas, espacios colapsados.
// "Azúcar  Morena" y "azucar morena" canonicalizan igual.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics descompone (NFD), elimina marcas combinantes y recompone.
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicaliza un nombre para comparación: minúsculas, sin tildes y con
// espacios interiores colapsados a uno. Si la transformación falla (entrada
// no UTF-8 válida), cae al lowercase simple.
func Name(s string) string {
	folded, _, err := transform.String(removeDiacritics, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	return strings.Join(strings.Fields(folded), " ")
}
