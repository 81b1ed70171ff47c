// Package brokenio wraps an io.ReadCloser so that reading goes wrong on
// purpose. It is for checking that the coordinate reader gives up
// cleanly instead of drawing half a molecule.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
//   rdr = brokenio.NewReader(rdr, seed)
// and everything works as before, but with the failures you asked for.
package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what we return for a failure we made up.
var ErrBroken = errors.New("brokenio: artificial read failure")

// BrknRdrClsr has the variables controlling the failures.
// Probabilities are the fraction of calls on which something happens,
// so 0.05 means 5 % of the time.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // chance the very first read says EOF
	probFail     float32 // chance a read returns ErrBroken
	failAfter    int     // fail once this many bytes went through, if > 0
	probTrash    float32 // chance a read has its tail overwritten
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader, a wrapper around the old one. By
// default nothing goes wrong.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, rnd: rand.New(rand.NewSource(seed))}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read, like an empty file.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reading fail as soon as n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetProbTrash sets how often the second half of a read is overwritten
// with letters, which no number parser will like.
func (r *BrknRdrClsr) SetProbTrash(prob float32) { r.probTrash = prob }

// NByte says how much has been read.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice overwrites the second half of p with 'x', leaving white
// space alone so lines keep the same number of fields.
func trashSlice(p []byte) {
	for i := len(p) / 2; i < len(p); i++ {
		switch p[i] {
		case ' ', '\t', '\n', '\r':
		default:
			p[i] = 'x'
		}
	}
}

// Read passes on the original Read, going wrong as configured.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	r.nCalled++
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if n > 0 && r.probTrash > 0 && r.rnd.Float32() < r.probTrash {
		trashSlice(p[:n])
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdrOrig.Close()
}
