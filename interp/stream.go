package interp

import (
	"bufio"
	"fmt"
	"io"
)

// InputStream yields one line per call, or signals end-of-input (spec
// §5's design note): a blocking `read` call is modeled as one method
// call, so a GUI host can implement it over a queue+signal while a
// batch host implements it over a string, without either host
// reaching into the interpreter's internals.
type InputStream interface {
	// ReadLine returns the next line and true, or ("", false) once the
	// stream is exhausted.
	ReadLine() (string, bool)
}

// OutputStream and ErrorStream receive whole lines of program output
// and diagnostic text respectively (spec §4.7, §7).
type OutputStream interface {
	WriteLine(string)
}

type ErrorStream interface {
	WriteLine(string)
}

type lineInput struct {
	sc *bufio.Scanner
}

// NewLineInput adapts an io.Reader (e.g. os.Stdin, or a string wrapped
// in strings.NewReader for batch/test runs) into an InputStream.
func NewLineInput(r io.Reader) InputStream {
	return &lineInput{sc: bufio.NewScanner(r)}
}

func (l *lineInput) ReadLine() (string, bool) {
	if !l.sc.Scan() {
		return "", false
	}
	return l.sc.Text(), true
}

type writerStream struct {
	w io.Writer
}

// NewWriterOutput adapts an io.Writer into an OutputStream.
func NewWriterOutput(w io.Writer) OutputStream { return &writerStream{w: w} }

// NewWriterError adapts an io.Writer into an ErrorStream.
func NewWriterError(w io.Writer) ErrorStream { return &writerStream{w: w} }

func (s *writerStream) WriteLine(line string) {
	fmt.Fprintln(s.w, line)
}
