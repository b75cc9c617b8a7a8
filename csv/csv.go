package csv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	quote = '"'
	nl    = '\n'
	cr    = '\r'
)

var errUnterminated = errors.New("unterminated")

type Reader struct {
	inner         *bufio.Reader
	Comma         byte
	FieldsPerLine int
	TrimSpace     bool

	atEOF bool
}

func NewReader(r io.Reader) *Reader {
	rs := Reader{
		inner: bufio.NewReader(r),
		Comma: ',',
	}
	return &rs
}

func (r *Reader) Done() bool {
	return r.atEOF
}

func (r *Reader) ReadAll() ([][]string, error) {
	var all [][]string
	for {
		rs, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		all = append(all, rs)
	}
	return all, nil
}

func (r *Reader) Read() ([]string, error) {
	if r.Done() {
		return nil, io.EOF
	}
	line, err := r.inner.ReadBytes(nl)
	if len(line) == 0 && errors.Is(err, io.EOF) {
		r.atEOF = true
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	var res []string
	for i := 0; ; {
		var (
			field []byte
			size  int
			err   error
		)
		if i < len(line) && line[i] == quote {
			for {
				field, size, err = r.readQuotedField(line[i:])
				if !errors.Is(err, errUnterminated) {
					break
				}
				next, err1 := r.inner.ReadBytes(nl)
				if len(next) == 0 {
					return nil, err
				}
				if err1 != nil && !errors.Is(err1, io.EOF) {
					return nil, err1
				}
				line = append(line, next...)
			}
		} else {
			field, size, err = r.readDefaultField(line[i:])
		}
		if err != nil {
			return nil, err
		}
		res = append(res, r.value(field))

		i += size
		if i >= len(line) || line[i] == nl {
			break
		}
		if line[i] == cr {
			if i+1 < len(line) && line[i+1] != nl {
				return nil, fmt.Errorf("carriage return only allow followed by newline")
			}
			break
		}
		if line[i] != r.Comma {
			return nil, fmt.Errorf("unexpected character after field")
		}
		i++
	}
	if r.FieldsPerLine > 0 && len(res) != r.FieldsPerLine {
		return nil, fmt.Errorf("invalid number of fields")
	}
	return res, nil
}

func (r *Reader) value(field []byte) string {
	str := string(field)
	if r.TrimSpace {
		str = strings.TrimSpace(str)
	}
	return str
}

func (r *Reader) readQuotedField(line []byte) ([]byte, int, error) {
	for offset := 1; offset < len(line); offset++ {
		if line[offset] != quote {
			continue
		}
		if offset+1 < len(line) && line[offset+1] == quote {
			offset++
			continue
		}
		field := bytes.ReplaceAll(line[1:offset], []byte{quote, quote}, []byte{quote})
		return field, offset + 1, nil
	}
	return nil, 0, errUnterminated
}

func (r *Reader) readDefaultField(line []byte) ([]byte, int, error) {
	var offset int
	for offset < len(line) {
		switch line[offset] {
		case quote:
			return nil, 0, fmt.Errorf("unexpected quote")
		case r.Comma, cr, nl:
			return line[:offset], offset, nil
		default:
			offset++
		}
	}
	return line[:offset], offset, nil
}

type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: ',',
	}
	return &ws
}

func (w *Writer) WriteAll(data [][]string) error {
	for _, d := range data {
		if err := w.Write(d); err != nil {
			return err
		}
	}
	return w.inner.Flush()
}

func (w *Writer) Write(line []string) error {
	var err error
	for i, str := range line {
		if i > 0 {
			if err = w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
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
		if err = w.inner.WriteByte(cr); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return true
	}
	return strings.IndexByte(str, w.Comma) >= 0 || strings.ContainsAny(str, "\"\r\n")
}

func (w *Writer) writeQuoted(str string) error {
	if err := w.inner.WriteByte(quote); err != nil {
		return err
	}
	if _, err := w.inner.WriteString(strings.ReplaceAll(str, `"`, `""`)); err != nil {
		return err
	}
	return w.inner.WriteByte(quote)
}
