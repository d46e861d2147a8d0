package parser

import (
	"errors"
	"strings"

	"github.com/postline/internal/debug"
	"github.com/postline/internal/normalize"
)

// ErrNoParse is returned by callers that need an error for a nil Result.
var ErrNoParse = errors.New("input could not be parsed as an address")

// ParseLocation classifies input and routes it: an intersection connector
// first, then a PO box indicator, then the standard cascade with the
// informal parser as fallback. One layer of enclosing parentheses is
// removed first. Blank input and input with no address signal yield nil.
func ParseLocation(input string, opts Options) Result {
	opts = opts.resolved()
	text := normalize.StripEnclosingParens(input)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if !opts.Heuristics.Input.Check(text) {
		debug.DebugOutput(opts.Debug, "rejected: no address components in %q", text)
		return nil
	}

	x := patterns()
	if x.set.Connector.MatchString(text) {
		if r := ParseIntersection(text, opts); r != nil {
			return r
		}
	}
	if x.poDetect.MatchString(text) {
		if r := ParsePoBox(text, opts); r != nil {
			return r
		}
	}
	if r := ParseAddress(text, opts); r != nil {
		return r
	}
	if r := ParseInformalAddress(text, opts); r != nil {
		debug.DebugOutput(opts.Debug, "fell back to informal parse")
		return r
	}
	return nil
}
