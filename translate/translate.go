// Package translate localizes diagnostic text through golang.org/x/text.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// FALLBACK_LOCALE is used when the system reports no locale.
const FALLBACK_LOCALE = "en-US"

var printer = newPrinter(systemLocales())

// systemLocales lists the user's preferred locales.
func systemLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lol16: locale: %v", err)
	}

	return
}

// newPrinter selects a message printer for the best matching locale.
func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{FALLBACK_LOCALE}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
