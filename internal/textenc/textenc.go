// ABOUTME: Maps host codec names (utf-8, latin1, cp932, ...) to x/text encodings
// ABOUTME: UTF-8 is a byte-exact no-op so candidate words round-trip unchanged

package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnknownEncoding is returned by Lookup for names no index recognizes.
var ErrUnknownEncoding = errors.New("unknown encoding")

// aliases maps editor-style codec names to labels the x/text indexes know.
var aliases = map[string]string{
	"latin1":  "iso-8859-1",
	"cp932":   "shift_jis",
	"sjis":    "shift_jis",
	"cp936":   "gbk",
	"cp949":   "euc-kr",
	"cp950":   "big5",
	"cp1252":  "windows-1252",
	"ucs-2":   "utf-16be",
	"ucs-2le": "utf-16le",
}

// Lookup resolves a codec name. "", "utf-8" and "utf8" map to encoding.Nop.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "utf-8", "utf8":
		return encoding.Nop, nil
	}
	if alias, ok := aliases[key]; ok {
		key = alias
	}

	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// Decode converts bytes in enc into a UTF-8 string.
func Decode(enc encoding.Encoding, b []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return string(out), nil
}

// NewEncodeWriter returns a writer that encodes UTF-8 input into enc before
// passing it to w. The caller must Close it to flush. Runes enc cannot
// represent fail the write.
func NewEncodeWriter(w io.Writer, enc encoding.Encoding) io.WriteCloser {
	return transform.NewWriter(w, enc.NewEncoder())
}

// NewDecodeReader returns a reader that yields r's bytes decoded from enc.
func NewDecodeReader(r io.Reader, enc encoding.Encoding) io.Reader {
	return transform.NewReader(r, enc.NewDecoder())
}
