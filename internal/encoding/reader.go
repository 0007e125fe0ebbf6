package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	textenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Charset labels reported on a Reader.
const (
	UTF8        = "UTF-8"
	UTF16LE     = "UTF-16LE"
	UTF16BE     = "UTF-16BE"
	Windows1252 = "windows-1252"
)

const sniffLen = 4096

var boms = []struct {
	prefix  []byte
	charset string
}{
	{[]byte{0xEF, 0xBB, 0xBF}, UTF8},
	{[]byte{0xFF, 0xFE}, UTF16LE},
	{[]byte{0xFE, 0xFF}, UTF16BE},
}

// decoders maps chardet results to the decoder used for them. Latin-1 is
// read as Windows-1252, which is a superset accountants' tools actually emit.
var decoders = map[string]textenc.Encoding{
	UTF16LE:       unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	UTF16BE:       unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"ISO-8859-1":  charmap.Windows1252,
	Windows1252:   charmap.Windows1252,
	"ISO-8859-9":  charmap.ISO8859_9,
	"ISO-8859-15": charmap.ISO8859_15,
}

// Reader yields UTF-8 text decoded from an export of unknown charset.
type Reader struct {
	io.Reader
	// Charset is the label of the detected source encoding.
	Charset string
}

// NewReader sniffs the first bytes of r and returns a Reader producing UTF-8.
// A byte order mark wins, then valid UTF-8, then chardet's best guess;
// anything unrecognised is decoded as Windows-1252.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sniffing charset: %w", err)
	}

	for _, bom := range boms {
		if !bytes.HasPrefix(head, bom.prefix) {
			continue
		}

		_, _ = br.Discard(len(bom.prefix))

		return decode(br, bom.charset), nil
	}

	if utf8.Valid(completeRunes(head, len(head) == sniffLen)) {
		return &Reader{Reader: br, Charset: UTF8}, nil
	}

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if result.Charset == UTF8 {
			return &Reader{Reader: br, Charset: UTF8}, nil
		}

		if _, ok := decoders[result.Charset]; ok {
			return decode(br, result.Charset), nil
		}
	}

	return decode(br, Windows1252), nil
}

func decode(r io.Reader, charset string) *Reader {
	if charset == UTF8 {
		return &Reader{Reader: r, Charset: UTF8}
	}

	return &Reader{
		Reader:  transform.NewReader(r, decoders[charset].NewDecoder()),
		Charset: charset,
	}
}

// completeRunes drops a multi-byte sequence cut off by the sniff window so it
// does not make otherwise valid UTF-8 look invalid.
func completeRunes(b []byte, truncated bool) []byte {
	if !truncated {
		return b
	}

	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}

			break
		}
	}

	return b
}
