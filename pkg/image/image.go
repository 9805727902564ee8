// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package image

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lassandro/bdcasm/pkg/encoding"
)

const DefaultBreadcrumb = "a.bdc"

type DecodeError struct {
	Line   int
	Reason string
	Value  string
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("%02d: %s\n\t%s", err.Line, err.Reason, err.Value)
}

// WriteTo serializes the image: the decimal header count on the first line,
// one line per header entry, then one line per instruction.
func (img *Image) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var written int64

	emit := func(line string) error {
		n, err := bw.WriteString(line)
		written += int64(n)

		if err != nil {
			return err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}

		written++
		return nil
	}

	if err := emit(strconv.Itoa(len(img.Header))); err != nil {
		return written, err
	}

	for _, entry := range img.Header {
		if err := emit(entry.String()); err != nil {
			return written, err
		}
	}

	for _, inst := range img.Body {
		if err := emit(inst.String()); err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

func (img *Image) Bytes() []byte {
	var buffer bytes.Buffer

	// bytes.Buffer writes never fail
	img.WriteTo(&buffer)

	return buffer.Bytes()
}

// Decode parses a serialized image. A header line holding a single integer
// is read as a code offset; the format cannot tell it apart from a one word
// constant list.
func Decode(r io.Reader) (*Image, error) {
	scanner := bufio.NewScanner(r)
	line := 0

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}

		return nil, &DecodeError{1, "Missing header count", ""}
	}
	line++

	count, err := strconv.ParseUint(strings.TrimSpace(scanner.Text()), 10, 32)

	if err != nil {
		return nil, &DecodeError{line, "Invalid header count", scanner.Text()}
	}

	img := &Image{Header: make([]Entry, 0, count)}

	for uint64(len(img.Header)) < count {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}

			return nil, &DecodeError{
				line, "Truncated header", strconv.FormatUint(count, 10),
			}
		}
		line++

		entry, err := decodeEntry(scanner.Text())

		if err != nil {
			return nil, &DecodeError{line, err.Error(), scanner.Text()}
		}

		img.Header = append(img.Header, entry)
	}

	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		img.Body = append(img.Body, Instruction{fields[0], fields[1:]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return img, nil
}

func decodeEntry(s string) (Entry, error) {
	name, value, found := strings.Cut(s, " ")

	if name == "" {
		return Entry{}, fmt.Errorf("Empty header entry")
	}

	if !found {
		return Entry{Type: ENTRY_EXTERN, Name: name}, nil
	}

	if strings.HasPrefix(value, `"`) {
		if len(value) < 2 || !strings.HasSuffix(value, `"`) {
			return Entry{}, fmt.Errorf("Unterminated text constant")
		}

		return Entry{
			Type: ENTRY_TEXT, Name: name, Text: value[1 : len(value)-1],
		}, nil
	}

	if strings.Contains(value, ",") {
		words, token, err := encoding.DecodeWordList(value)

		if err != nil {
			return Entry{}, fmt.Errorf("Invalid word %q", token)
		}

		return Entry{Type: ENTRY_WORDS, Name: name, Words: words}, nil
	}

	offset, err := encoding.DecodeWord(value)

	if err != nil {
		return Entry{}, fmt.Errorf("Invalid offset %q", value)
	}

	return Entry{Type: ENTRY_OFFSET, Name: name, Offset: offset}, nil
}

// Sink persists a finished image.
type Sink interface {
	WriteImage(path string, img *Image) error
}

type FileSink struct{}

func (FileSink) WriteImage(path string, img *Image) error {
	if path == "" {
		path = DefaultBreadcrumb
	}

	return os.WriteFile(path, img.Bytes(), 0666)
}
