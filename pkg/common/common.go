// 29 Apr 2020

// Package common has the bits shared by the commands and their tests:
// exit codes, a temporary file helper and the logger set up.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// DfltInput is the file the viewer reads and the simulator writes when
// nobody says otherwise.
const DfltInput = "points_with_symbols.txt"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// noClose is the closer for streams we did not open.
type noClose struct{}

func (noClose) Close() error { return nil }

// LogWhere decides where to send logged output.
// "" throws it away, "stdout" and "stderr" are what they say and
// anything else is taken as a file name which we append to.
// The caller should Close the returned closer when finished logging.
// It only closes a file we opened, never stdout or stderr.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = noClose{}
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, "", log.Lshortfile), closer, nil
}
