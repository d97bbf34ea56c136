package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Field is one named value of a Record, kept as the raw JSON the API returned.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Record is a single entry returned by the statistics API. The schema belongs
// to the API, so fields are kept in response order with their raw values.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord builds a Record from key/value pairs. Values are marshalled to JSON.
func NewRecord(pairs ...any) (*Record, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("record: odd number of key/value arguments")
	}
	r := &Record{}
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("record: key at position %d is %T, not string", i, pairs[i])
		}
		raw, err := json.Marshal(pairs[i+1])
		if err != nil {
			return nil, fmt.Errorf("record: marshal %q: %w", key, err)
		}
		r.Set(key, raw)
	}
	return r, nil
}

// Set replaces the value of key in place, or appends it when absent.
func (r *Record) Set(key string, value json.RawMessage) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in response order.
func (r *Record) Fields() []Field {
	return r.fields
}

// Keys returns the field names in response order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the raw value of key.
func (r *Record) Get(key string) (json.RawMessage, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// String returns key's value when it is a JSON string.
func (r *Record) String(key string) (string, bool) {
	raw, ok := r.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Number returns key's value when it is a JSON number, as its literal text.
func (r *Record) Number(key string) (json.Number, bool) {
	raw, ok := r.Get(key)
	if !ok || KindOf(raw) != KindNumber {
		return "", false
	}
	return json.Number(bytes.TrimSpace(raw)), true
}

// Float returns key's value as float64 when it is a JSON number.
func (r *Record) Float(key string) (float64, bool) {
	n, ok := r.Number(key)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int returns key's value as int64 when it is an integral JSON number.
func (r *Record) Int(key string) (int64, bool) {
	n, ok := r.Number(key)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// MarshalJSON writes the fields as an object in their stored order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping key order and raw values.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	*r = Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: field %q: %w", key, err)
		}
		r.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Kind classifies a raw JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// KindOf returns the JSON kind of raw.
func KindOf(raw json.RawMessage) Kind {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return KindNull
	}
	switch raw[0] {
	case '"':
		return KindString
	case 't', 'f':
		return KindBool
	case '{':
		return KindObject
	case '[':
		return KindArray
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
