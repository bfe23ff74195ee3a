package csv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUnterminated = errors.New("unterminated quoted field")

type Reader struct {
	inner *bufio.Reader
	Comma byte

	atEOF bool
}

func NewReader(r io.Reader) *Reader {
	rs := Reader{
		inner: bufio.NewReader(r),
		Comma: comma,
	}
	return &rs
}

func (r *Reader) ReadAll() ([][]string, error) {
	var all [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		all = append(all, rec)
	}
	return all, nil
}

func (r *Reader) Read() ([]string, error) {
	if r.atEOF {
		return nil, io.EOF
	}
	line, err := r.inner.ReadString(nl)
	if line == "" && errors.Is(err, io.EOF) {
		r.atEOF = true
		return nil, io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	line = strings.TrimRight(line, "\r\n")

	var record []string
	for {
		var (
			field string
			size  int
			err   error
		)
		if len(line) > 0 && line[0] == quote {
			field, size, err = r.readQuoted(line)
		} else {
			field, size, err = r.readPlain(line)
		}
		if err != nil {
			return nil, err
		}
		record = append(record, field)
		if size >= len(line) {
			break
		}
		line = line[size+1:]
	}
	return record, nil
}

func (r *Reader) readPlain(line string) (string, int, error) {
	ix := strings.IndexByte(line, r.Comma)
	if ix < 0 {
		return line, len(line), nil
	}
	return line[:ix], ix, nil
}

func (r *Reader) readQuoted(line string) (string, int, error) {
	var (
		str strings.Builder
		pos = 1
	)
	for pos < len(line) {
		c := line[pos]
		if c != quote {
			str.WriteByte(c)
			pos++
			continue
		}
		if pos+1 < len(line) && line[pos+1] == quote {
			str.WriteByte(quote)
			pos += 2
			continue
		}
		pos++
		if pos < len(line) && line[pos] != r.Comma {
			return "", 0, fmt.Errorf("unexpected character after closing quote")
		}
		return str.String(), pos, nil
	}
	return "", 0, errUnterminated
}
