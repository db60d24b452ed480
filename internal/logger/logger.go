package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init initializes the default logger on stderr
func Init(debug, noColor bool) {
	InitWithWriter(os.Stderr, debug, noColor)
}

// InitWithWriter initializes the default logger on w
func InitWithWriter(w io.Writer, debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(w,
		log.Options{
			ReportCaller:    debug,
			ReportTimestamp: false,
			TimeFormat:      time.RFC3339,
			Prefix:          "ASMVIEW",
		}))

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
