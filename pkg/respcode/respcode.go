// Package respcode issues permanent respondent codes. The digit part is
// Luhn-valid so mistyped codes are caught before hitting the database.
package respcode

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	prefix     = "RESP_"
	codeLength = 12
)

func New() (string, error) {
	number := goluhn.Generate(codeLength)
	return prefix + number, nil
}

func Valid(code string) bool {
	if !strings.HasPrefix(code, prefix) {
		return false
	}
	return goluhn.Validate(strings.TrimPrefix(code, prefix)) == nil
}
