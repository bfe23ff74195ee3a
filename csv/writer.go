package csv

import (
	"bufio"
	"io"
	"strings"
)

type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: comma,
	}
	return &ws
}

func (w *Writer) WriteAll(records [][]string) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.inner.Flush()
}

func (w *Writer) Write(record []string) error {
	for i, str := range record {
		if i > 0 {
			if err := w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		var err error
		if w.needQuotes(str) {
			err = w.writeQuoted(str)
		} else {
			_, err = w.inner.WriteString(str)
		}
		if err != nil {
			return err
		}
	}
	if w.UseCRLF {
		if err := w.inner.WriteByte(cr); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) Flush() {
	w.inner.Flush()
}

func (w *Writer) Err() error {
	_, err := w.inner.Write(nil)
	return err
}

func (w *Writer) writeQuoted(str string) error {
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c == quote {
			if err := w.inner.WriteByte(quote); err != nil {
				return err
			}
		}
		if err := w.inner.WriteByte(c); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(quote)
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return true
	}
	if str == "" {
		return false
	}
	if str[0] == space || str[len(str)-1] == space {
		return true
	}
	for _, c := range []byte{w.Comma, quote, cr, nl} {
		if strings.IndexByte(str, c) >= 0 {
			return true
		}
	}
	return false
}
