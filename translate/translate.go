// Package translate formats user-visible messages through a locale-aware
// message printer.
package translate

import (
	"log"
	"os"
	"slices"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LANG_ENV names the environment variable that overrides the system locale.
const LANG_ENV = "SIMPLETRON_LANG"

// DEFAULT_LANG is used when no locale can be determined.
const DEFAULT_LANG = "en-US"

var printer *message.Printer

func init() {
	SetLanguage(os.Getenv(LANG_ENV))
}

// SetLanguage selects the message language from a preference list of
// BCP 47 tags. Empty tags are ignored; an empty list selects the system
// locales.
//
// Package level error values are formatted when their package is
// initialized, so only messages formatted after the call are affected.
func SetLanguage(tags ...string) {
	tags = slices.DeleteFunc(slices.Clone(tags), func(tag string) bool {
		return len(tag) == 0
	})

	if len(tags) == 0 {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("simpletron: locale: %v", err)
		}
		tags = locales
	}

	if len(tags) == 0 {
		tags = []string{DEFAULT_LANG}
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
