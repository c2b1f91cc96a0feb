package textcircle

import "github.com/katalvlaran/textcircle/validate"

// Validate checks s and returns the report in wire format: line breaks as
// <br> and any diagram wrapped in <code>.
func Validate(s string) string {
	return validate.Validate(s).String()
}
