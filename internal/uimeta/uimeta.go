// Package uimeta holds the declarative view descriptors the generic client
// renders lists and forms from. Field order matters to the client (columns
// and inputs appear in declaration order), so the mapping types marshal to
// JSON objects that preserve it.
package uimeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DisplayDate is the layout the renderer shows dates in
const DisplayDate = "02.01.2006"

// Field input types understood by the renderer
const (
	TypeText        = "text"
	TypePassword    = "password"
	TypeNumber      = "number"
	TypeDate        = "date"
	TypeSelectBox   = "selectbox"
	TypeRadio       = "radio"
	TypeRadioImages = "radio-images"
	TypeDictionary  = "dictionary"
)

// Column is one table column: row field key and its header label
type Column struct {
	Key   string
	Label string
}

// Columns marshals to a JSON object {key: label, ...} in slice order
type Columns []Column

func (c Columns) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, col.Key, col.Label); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Columns) UnmarshalJSON(data []byte) error {
	pairs, err := readStringPairs(data)
	if err != nil {
		return err
	}
	*c = make(Columns, len(pairs))
	for i, p := range pairs {
		(*c)[i] = Column{Key: p[0], Label: p[1]}
	}
	return nil
}

// Option is one enumerated value of a radio/selectbox field
type Option struct {
	Key   string
	Label string
}

// Options marshals like Columns: an ordered {value: label} object
type Options []Option

func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writePair(&buf, opt.Key, opt.Label); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Options) UnmarshalJSON(data []byte) error {
	pairs, err := readStringPairs(data)
	if err != nil {
		return err
	}
	*o = make(Options, len(pairs))
	for i, p := range pairs {
		(*o)[i] = Option{Key: p[0], Label: p[1]}
	}
	return nil
}

// Field describes one form input
type Field struct {
	Text       string  `json:"text"`
	Type       string  `json:"type"`
	Values     Options `json:"values,omitempty"`
	Controller string  `json:"controller,omitempty"`    // dictionary view key for TypeDictionary
	Default    string  `json:"default_value,omitempty"` // prefilled value for empty forms

	// DefaultToday renders the current date as the default at marshal time,
	// so a long-running server never serves a stale "today".
	DefaultToday bool `json:"-"`
}

func (f Field) MarshalJSON() ([]byte, error) {
	type plain Field
	out := plain(f)
	if f.DefaultToday {
		out.Default = time.Now().Format(DisplayDate)
	}
	return json.Marshal(out)
}

// FormField pairs a submit key with its input description
type FormField struct {
	Key string
	Field
}

// Form is the ordered set of inputs of an add/edit form
type Form []FormField

func (f Form) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ff := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ff.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ff.Field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *Form) UnmarshalJSON(data []byte) error {
	keys, raws, err := readRawPairs(data)
	if err != nil {
		return err
	}
	*f = make(Form, len(keys))
	for i, key := range keys {
		var field Field
		if err := json.Unmarshal(raws[i], &field); err != nil {
			return err
		}
		(*f)[i] = FormField{Key: key, Field: field}
	}
	return nil
}

// Get returns the field registered under key
func (f Form) Get(key string) (Field, bool) {
	for _, ff := range f {
		if ff.Key == key {
			return ff.Field, true
		}
	}
	return Field{}, false
}

// Descriptor is the full declarative view shape for one entity
type Descriptor struct {
	Key         string  `json:"-"` // view short name, e.g. "Materials"
	Description string  `json:"description"`
	Controller  string  `json:"controller"`
	Header      Columns `json:"header"`
	Add         Form    `json:"add"`
	Title       string  `json:"title"`
	TitleMain   string  `json:"title_main"`
	ViewMode    string  `json:"viewMode,omitempty"`
	NoCreate    bool    `json:"nocreate,omitempty"`
	NoEdit      bool    `json:"noedit,omitempty"`
	NoDelete    bool    `json:"nodelete,omitempty"`
}

// --- JSON helpers ---

func writePair(buf *bytes.Buffer, key, label string) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(label)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// readStringPairs decodes a JSON object of string values preserving key order
func readStringPairs(data []byte) ([][2]string, error) {
	keys, raws, err := readRawPairs(data)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]string, len(keys))
	for i, key := range keys {
		var label string
		if err := json.Unmarshal(raws[i], &label); err != nil {
			return nil, err
		}
		pairs[i] = [2]string{key, label}
	}
	return pairs, nil
}

// readRawPairs walks a JSON object with a token decoder, keeping key order
func readRawPairs(data []byte) ([]string, []json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("uimeta: expected JSON object, got %v", tok)
	}
	var keys []string
	var raws []json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("uimeta: expected object key, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		keys = append(keys, key)
		raws = append(raws, raw)
	}
	return keys, raws, nil
}
