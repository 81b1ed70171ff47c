package atoms

import (
	"strconv"
	"unicode/utf8"
)

const maxMsgLen = 70

// ReadError saves the line number and the line we were trying to read.
type ReadError struct {
	N      int    // line number, from 1
	Inline string // The line that provoked the error
	Desc   string // Description of error
	Err    error  // underlying i/o error, if there was one
}

func newReadError(n int, inline, desc string) *ReadError {
	return &ReadError{N: n, Inline: firstPart(inline), Desc: desc}
}

// firstPart cuts s to at most maxMsgLen bytes without splitting a rune.
func firstPart(s string) string {
	if len(s) <= maxMsgLen {
		return s
	}
	n := maxMsgLen
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Unwrap lets errors.Is see an i/o error from underneath.
func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Error() string {
	errmsg := "line " + strconv.Itoa(e.N) + ": " + e.Desc
	if e.Inline != "" {
		errmsg += "\nline starting with\n" + e.Inline
	}
	return errmsg
}
