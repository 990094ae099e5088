// Package translate formats user-visible messages for the current locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("fib6502: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the message printer from a list of preferred BCP 47
// tags. An empty list selects en-US.
func SetLanguage(tags ...string) {
	if len(tags) == 0 {
		tags = []string{"en-US"}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(tags...)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
