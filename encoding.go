package restyle

import (
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// textEncoding pairs a resolved encoding with its canonical label.
type textEncoding struct {
	name string
	enc  encoding.Encoding
}

// lookupEncoding resolves a WHATWG/IANA label such as "utf-8",
// "windows-1252" or "shift_jis".
func lookupEncoding(label string) (textEncoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return textEncoding{}, errors.Errorf("%w: %q", ErrUnknownEncoding, label)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		name = strings.ToLower(label)
	}

	return textEncoding{name: name, enc: enc}, nil
}

func (t textEncoding) isUTF8() bool {
	return t.name == "utf-8"
}

// decode converts raw file bytes to text. UTF-8 input is checked strictly
// rather than having invalid sequences replaced with U+FFFD.
func (t textEncoding) decode(data []byte) (string, error) {
	if t.isUTF8() {
		if !utf8.Valid(data) {
			return "", errors.New("invalid UTF-8 byte sequence")
		}
		return string(data), nil
	}

	out, err := t.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encode converts text back to bytes in the file's encoding. It fails on
// characters the encoding cannot represent.
func (t textEncoding) encode(text string) ([]byte, error) {
	if t.isUTF8() {
		return []byte(text), nil
	}
	return t.enc.NewEncoder().Bytes([]byte(text))
}
