// ABOUTME: easyjson codec for Candidate: flat {"word": ..., <extra>...} objects
// ABOUTME: Extra fields round-trip untouched; a missing word is a decode error

package filter

import (
	"encoding/json"
	"sort"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

const wordField = "word"

var (
	_ easyjson.Marshaler   = Candidate{}
	_ easyjson.Unmarshaler = (*Candidate)(nil)
)

// MarshalEasyJSON writes the candidate as a flat JSON object with "word"
// first and extra fields in key order.
func (c Candidate) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"word":`)
	w.String(c.Word)

	keys := make([]string, 0, len(c.Extra))
	for k := range c.Extra {
		if k != wordField {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.RawByte(',')
		w.String(k)
		w.RawByte(':')
		if raw, ok := c.Extra[k].(json.RawMessage); ok {
			w.Raw(raw, nil)
			continue
		}
		w.Raw(json.Marshal(c.Extra[k]))
	}
	w.RawByte('}')
}

// MarshalJSON implements json.Marshaler.
func (c Candidate) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	c.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

// UnmarshalEasyJSON reads a flat JSON object; every key other than "word"
// lands in Extra as the json.RawMessage it was written as.
func (c *Candidate) UnmarshalEasyJSON(in *jlexer.Lexer) {
	c.Word = ""
	c.Extra = nil

	if in.IsNull() {
		in.Skip()
		in.AddError(ErrMissingWord)
		return
	}

	sawWord := false
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.String()
		in.WantColon()
		if key == wordField {
			c.Word = in.String()
			sawWord = true
		} else {
			if c.Extra == nil {
				c.Extra = make(map[string]any)
			}
			c.Extra[key] = json.RawMessage(append([]byte(nil), in.Raw()...))
		}
		in.WantComma()
	}
	in.Delim('}')

	if in.Ok() && !sawWord {
		in.AddError(ErrMissingWord)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Candidate) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	c.UnmarshalEasyJSON(&r)
	r.Consumed()
	return r.Error()
}
