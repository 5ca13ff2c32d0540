package bitget

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/bitget-legacy/types"
	"github.com/volatiletech/null"
)

// PayloadKind tags the root shape of a response body
type PayloadKind uint8

// Payload kinds
const (
	// PayloadArray is a bare JSON array root
	PayloadArray PayloadKind = iota + 1
	// PayloadEnveloped is an object root. When a data member is present it
	// is the payload, otherwise the object itself is.
	PayloadEnveloped
)

var (
	errEmptyPayload       = errors.New("empty payload")
	errUnexpectedRoot     = errors.New("unexpected JSON root")
	errRecordsNotAnArray  = errors.New("records are not an array")
	errRecordNotAnObject  = errors.New("record is not an object")
	errPayloadMemberUnset = errors.New("payload member not found")
)

// Payload is a decoded response body normalised at the boundary, before any
// business parsing runs
type Payload struct {
	Kind PayloadKind
	// Data is the array root, the envelope data member or the object root
	Data []byte
	// Timestamp is the envelope ts member when reported
	Timestamp null.Int64
	raw       []byte
}

// ParsePayload tags a raw response body
func ParsePayload(body []byte) (Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return Payload{}, errEmptyPayload
	}
	switch body[0] {
	case '[':
		return Payload{Kind: PayloadArray, Data: body, raw: body}, nil
	case '{':
		p := Payload{Kind: PayloadEnveloped, Data: body, raw: body}
		if v, dt, _, err := jsonparser.Get(body, "data"); err == nil && dt != jsonparser.Null {
			p.Data = v
			if dt == jsonparser.String {
				// scalar data members such as the server time keep their quotes
				p.Data = quoteRaw(v)
			}
		}
		p.Timestamp = Record(body).Timestamp("ts")
		return p, nil
	}
	return Payload{}, fmt.Errorf("%w: %q", errUnexpectedRoot, body[0])
}

// Raw returns the full response body
func (p Payload) Raw() []byte {
	return p.raw
}

// Record returns the payload data, or a member of it, as a single record
func (p Payload) Record(keys ...string) (Record, error) {
	if len(keys) == 0 {
		return Record(p.Data), nil
	}
	v, dt, _, err := jsonparser.Get(p.Data, keys...)
	if err != nil || dt == jsonparser.Null {
		return nil, fmt.Errorf("%w: %v", errPayloadMemberUnset, keys)
	}
	if dt == jsonparser.String {
		return quoteRaw(v), nil
	}
	return Record(v), nil
}

// Records returns every element of the payload data array, or of the array
// found at keys within the data
func (p Payload) Records(keys ...string) ([]Record, error) {
	data := p.Data
	if len(keys) > 0 {
		v, dt, _, err := jsonparser.Get(data, keys...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errPayloadMemberUnset, keys)
		}
		if dt != jsonparser.Array {
			return nil, fmt.Errorf("%w: %v", errRecordsNotAnArray, keys)
		}
		data = v
	}
	return Record(data).Elements()
}

// Record is a single raw JSON value, usually an object or an array row.
// Accessors take candidate member names and return the first one present;
// JSON null and empty strings count as absent.
type Record []byte

// IsArray returns whether the record is an array row
func (r Record) IsArray() bool {
	t := bytes.TrimSpace(r)
	return len(t) > 0 && t[0] == '['
}

// Elements returns the elements of an array record
func (r Record) Elements() ([]Record, error) {
	if !r.IsArray() {
		return nil, errRecordsNotAnArray
	}
	var out []Record
	var errs error
	_, err := jsonparser.ArrayEach(r, func(v []byte, dt jsonparser.ValueType, _ int, err error) {
		if err != nil {
			errs = errors.Join(errs, err)
			return
		}
		if dt == jsonparser.String {
			v = quoteRaw(v)
		}
		out = append(out, Record(v))
	})
	if err != nil {
		return nil, err
	}
	return out, errs
}

// Has returns whether key is present, even when null
func (r Record) Has(key string) bool {
	_, dt, _, err := jsonparser.Get(r, key)
	return err == nil && dt != jsonparser.NotExist
}

// Get returns the nested value at key
func (r Record) Get(key string) (Record, bool) {
	v, dt, _, err := jsonparser.Get(r, key)
	if err != nil || dt == jsonparser.Null {
		return nil, false
	}
	if dt == jsonparser.String {
		v = quoteRaw(v)
	}
	return Record(v), true
}

// scalar returns the textual value at path. Strings are unescaped, numbers and
// booleans are returned as their literal.
func (r Record) scalar(path ...string) (string, bool) {
	v, dt, _, err := jsonparser.Get(r, path...)
	if err != nil {
		return "", false
	}
	switch dt {
	case jsonparser.String:
		s, err := jsonparser.ParseString(v)
		if err != nil || s == "" {
			return "", false
		}
		return s, true
	case jsonparser.Number, jsonparser.Boolean:
		return string(v), true
	}
	return "", false
}

// Value returns the record itself as a string when it is a JSON scalar
func (r Record) Value() null.String {
	t := bytes.TrimSpace(r)
	if len(t) == 0 {
		return null.String{}
	}
	if t[0] == '"' && len(t) >= 2 {
		s, err := jsonparser.ParseString(t[1 : len(t)-1])
		if err != nil || s == "" {
			return null.String{}
		}
		return null.StringFrom(s)
	}
	if string(t) == "null" || t[0] == '{' || t[0] == '[' {
		return null.String{}
	}
	return null.StringFrom(string(t))
}

// String returns the first present member as a string
func (r Record) String(keys ...string) null.String {
	for _, k := range keys {
		if s, ok := r.scalar(k); ok {
			return null.StringFrom(s)
		}
	}
	return null.String{}
}

// Decimal returns the first present member that parses as a number
func (r Record) Decimal(keys ...string) decimal.NullDecimal {
	for _, k := range keys {
		if s, ok := r.scalar(k); ok {
			if d, err := decimal.NewFromString(s); err == nil {
				return decimal.NewNullDecimal(d)
			}
		}
	}
	return decimal.NullDecimal{}
}

// Timestamp returns the first present member parsed as epoch milliseconds.
// Epoch strings and ISO-8601 strings are both accepted.
func (r Record) Timestamp(keys ...string) null.Int64 {
	for _, k := range keys {
		if s, ok := r.scalar(k); ok {
			if ms, ok := types.ParseMillis(s); ok {
				return null.Int64From(ms)
			}
		}
	}
	return null.Int64{}
}

// Index returns the element at i of an array record as a string
func (r Record) Index(i int) null.String {
	if s, ok := r.scalar("[" + strconv.Itoa(i) + "]"); ok {
		return null.StringFrom(s)
	}
	return null.String{}
}

// IndexDecimal returns the element at i of an array record as a number
func (r Record) IndexDecimal(i int) decimal.NullDecimal {
	if s, ok := r.scalar("[" + strconv.Itoa(i) + "]"); ok {
		if d, err := decimal.NewFromString(s); err == nil {
			return decimal.NewNullDecimal(d)
		}
	}
	return decimal.NullDecimal{}
}

// IndexTimestamp returns the element at i of an array record as epoch
// milliseconds
func (r Record) IndexTimestamp(i int) null.Int64 {
	if s, ok := r.scalar("[" + strconv.Itoa(i) + "]"); ok {
		if ms, ok := types.ParseMillis(s); ok {
			return null.Int64From(ms)
		}
	}
	return null.Int64{}
}

// requireObject returns an error when the record is not a JSON object
func (r Record) requireObject() error {
	t := bytes.TrimSpace(r)
	if len(t) == 0 || t[0] != '{' {
		return errRecordNotAnObject
	}
	return nil
}

// quoteRaw restores the quotes jsonparser strips from string values, escape
// sequences are left intact
func quoteRaw(v []byte) []byte {
	out := make([]byte, 0, len(v)+2)
	out = append(out, '"')
	out = append(out, v...)
	return append(out, '"')
}
