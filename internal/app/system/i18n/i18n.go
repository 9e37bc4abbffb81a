// Package i18n holds the Persian UI strings and number formatting.
//
// Keys are the English source strings; every key must have a Persian entry
// in catalog. Lookups for unknown keys fall back to the key itself.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tag is the UI language. The layout renders dir="rtl" for it.
var Tag = language.Persian

// Lang and Dir are written into the <html> element.
const (
	Lang = "fa"
	Dir  = "rtl"
)

var printer *message.Printer

func init() {
	for key, fa := range catalog {
		if err := message.SetString(Tag, key, fa); err != nil {
			panic("i18n: bad catalog entry " + key + ": " + err.Error())
		}
	}
	printer = message.NewPrinter(Tag)
}

// T translates key, formatting args with Persian conventions.
func T(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Number formats n with Persian digits and grouping.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Has reports whether key has a Persian entry.
func Has(key string) bool {
	_, ok := catalog[key]
	return ok
}
