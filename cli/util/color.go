package util

import (
	"github.com/mgutz/ansi"
)

var bold = ansi.ColorFunc("default+b")

// Bold makes string bold.
func Bold(str string) string {
	return bold(str)
}
