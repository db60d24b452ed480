package color

import (
	"os"

	"github.com/muesli/termenv"
)

// ANSI palette indices
const (
	Red     = "1"
	Green   = "2"
	Yellow  = "3"
	Blue    = "4"
	Magenta = "5"
	Cyan    = "6"
	White   = "7"

	BrightBlack   = "8"
	BrightRed     = "9"
	BrightGreen   = "10"
	BrightYellow  = "11"
	BrightBlue    = "12"
	BrightMagenta = "13"
	BrightCyan    = "14"
	BrightWhite   = "15"
)

var (
	colorEnabled = true
	profile      = termenv.ANSI256
)

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		colorEnabled = false
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

// SetProfile selects the termenv profile used to encode colors
func SetProfile(p termenv.Profile) {
	profile = p
}

func Colorize(color, text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return profile.String(text).Foreground(profile.Color(color)).String()
}

// YellowText flags lines the grammar did not recognize
func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func BrightBlueText(text string) string {
	return Colorize(BrightBlue, text)
}

// BrightBlackText is used for everything that is not an opcode: labels,
// directive payloads and file names
func BrightBlackText(text string) string {
	return Colorize(BrightBlack, text)
}

func BoldText(text string) string {
	if !colorEnabled || text == "" {
		return text
	}
	return profile.String(text).Bold().String()
}
