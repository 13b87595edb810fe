package khmer

import (
	"io"

	"github.com/rs/zerolog"
)

// logger is the package-level sink for diagnostic events (currently the
// dictionary load event with word count and elapsed time).
// It defaults to a disabled logger so importing khmer as a library never
// writes to stdout on its own; an embedding binary calls SetLogger to wire
// up its own sink, the way cmd/khmer does at startup.
var logger = zerolog.New(io.Discard).With().Timestamp().Logger().Level(zerolog.Disabled)

// SetLogger replaces the package-level logger used for diagnostic events.
// It is meant to be called once, before any Init call, from the
// embedding binary's own startup path.
func SetLogger(l zerolog.Logger) {
	logger = l
}
