// Package i18n concentra el soporte bilingüe (inglés/árabe) del sitio: negociación de
// idioma, dirección de escritura, catálogo de mensajes y collation para ordenar textos.
//
// Las páginas se escriben una sola vez y se traducen con Translator.T; ya no existen
// variantes duplicadas por idioma.
package i18n

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Lang idioma soportado por el sitio.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Supported en el mismo orden que el matcher.
var Supported = []Lang{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

// Parse valida un código de idioma de la URL ("en", "ar").
func Parse(s string) (Lang, bool) {
	switch Lang(s) {
	case English, Arabic:
		return Lang(s), true
	}
	return "", false
}

// Negotiate elige el idioma a partir del header Accept-Language.
// Si no hay coincidencia razonable devuelve fallback.
func Negotiate(acceptLanguage string, fallback Lang) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(Supported) {
		return fallback
	}
	return Supported[idx]
}

// Tag devuelve la etiqueta BCP 47.
func (l Lang) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Dir dirección de escritura para el atributo HTML dir.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

// Other el idioma alternativo (selector de idioma del menú).
func (l Lang) Other() Lang {
	if l == Arabic {
		return English
	}
	return Arabic
}

func (l Lang) String() string { return string(l) }

// Collator para ordenar títulos según el idioma del visitante.
// collate.Collator no es seguro para uso concurrente: crear uno por operación.
func (l Lang) Collator() *collate.Collator {
	return collate.New(l.Tag(), collate.IgnoreCase)
}

// Pick elige el texto en el idioma pedido; en árabe cae al inglés si falta la traducción.
func Pick(l Lang, en, ar string) string {
	if l == Arabic && ar != "" {
		return ar
	}
	return en
}

// Translator traduce claves del catálogo a un idioma concreto.
type Translator struct {
	lang Lang
	p    *message.Printer
}

// NewTranslator construye un traductor para el idioma.
func NewTranslator(l Lang) *Translator {
	if _, ok := Parse(string(l)); !ok {
		l = English
	}
	return &Translator{lang: l, p: message.NewPrinter(l.Tag(), message.Catalog(messages))}
}

// Lang idioma del traductor.
func (t *Translator) Lang() Lang { return t.lang }

// T traduce key; una clave desconocida se devuelve tal cual.
func (t *Translator) T(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := b.SetString(language.English, e.key, e.en); err != nil {
			panic(fmt.Sprintf("i18n: mensaje en %q: %v", e.key, err))
		}
		if err := b.SetString(language.Arabic, e.key, e.ar); err != nil {
			panic(fmt.Sprintf("i18n: mensaje ar %q: %v", e.key, err))
		}
	}
	return b
}
