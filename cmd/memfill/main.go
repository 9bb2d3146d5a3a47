// Command memfill copies a fixed literal into a 32-byte buffer and prints
// the decoded prefix as "Mem: <text>".
package main

import (
	"io"
	"os"

	"github.com/CAFxX/memfill"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var literal = memfill.Literal

func run(w io.Writer) error {
	return memfill.Render(w, literal())
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Stdout); err != nil {
		log.Fatal().Err(err).Int("capacity", memfill.Capacity).Msg("render failed")
	}
}
