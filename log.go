package reedsolomon

import (
	"os"

	"github.com/charmbracelet/log"
)

// debugLogger gates decoder tracing behind a verbosity level, owned by each
// Codec instance rather than a process-wide global so that concurrent
// Codecs with different parameters never fight over one log level. Level 0
// is silent; level 1 logs the errata positions of each decoded chunk, and
// level 2 also logs the range of each encoded chunk. Individual decoder
// stages (syndromes, Berlekamp–Massey iterations) are not logged.
type debugLogger struct {
	level int
	out   *log.Logger
}

func newDebugLogger() *debugLogger {
	return &debugLogger{
		level: 0,
		out: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "reedsolomon",
			Level:  log.DebugLevel,
		}),
	}
}

func (d *debugLogger) setLevel(level int) { d.level = level }

func (d *debugLogger) debugf(atLevel int, format string, args ...any) {
	if d == nil || d.level < atLevel {
		return
	}
	d.out.Debugf(format, args...)
}
