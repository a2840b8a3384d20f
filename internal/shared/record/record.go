// Package record converts positional result rows into named records.
//
// A Mapper owns a fixed column-order list. The same list must drive the SQL
// projection and the mapping, so any drift between the two is reported as
// ErrColumnMismatch instead of silently shifting values into the wrong field.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrColumnMismatch = errors.New("record: column list does not match row shape")
	ErrUnknownField   = errors.New("record: unknown field")
	ErrFieldType      = errors.New("record: unexpected field type")
)

// Mapper maps rows whose values follow a declared column order.
type Mapper struct {
	columns []string
	index   map[string]int
}

// NewMapper declares the column order. Empty or duplicate names panic:
// they are programming errors, not runtime conditions.
func NewMapper(columns ...string) *Mapper {
	if len(columns) == 0 {
		panic("record: mapper needs at least one column")
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c == "" {
			panic("record: empty column name")
		}
		if _, dup := index[c]; dup {
			panic(fmt.Sprintf("record: duplicate column %q", c))
		}
		index[c] = i
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Mapper{columns: cols, index: index}
}

// Columns returns a copy of the declared order.
func (m *Mapper) Columns() []string {
	cols := make([]string, len(m.columns))
	copy(cols, m.columns)
	return cols
}

// Check verifies that a result set projects exactly the declared columns in order.
func (m *Mapper) Check(fieldNames []string) error {
	if len(fieldNames) != len(m.columns) {
		return fmt.Errorf("%w: expected %d columns, result has %d",
			ErrColumnMismatch, len(m.columns), len(fieldNames))
	}
	for i, name := range fieldNames {
		if name != m.columns[i] {
			return fmt.Errorf("%w: position %d is %q, expected %q",
				ErrColumnMismatch, i, name, m.columns[i])
		}
	}
	return nil
}

// Map builds a Record from positional values.
// An absent row (nil or empty) yields a nil Record and no error.
func (m *Mapper) Map(values []any) (*Record, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) != len(m.columns) {
		return nil, fmt.Errorf("%w: expected %d values, got %d",
			ErrColumnMismatch, len(m.columns), len(values))
	}

	vals := make([]any, len(values))
	copy(vals, values)

	return &Record{mapper: m, values: vals}, nil
}

// Record is an ordered name → value mapping produced by a Mapper.
type Record struct {
	mapper *Mapper
	values []any
}

func (r *Record) Len() int {
	return len(r.values)
}

func (r *Record) Keys() []string {
	return r.mapper.Columns()
}

func (r *Record) Get(name string) (any, bool) {
	i, ok := r.mapper.index[name]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// String returns a text field; a NULL value reads as "".
func (r *Record) String(name string) (string, error) {
	v, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", fmt.Errorf("%w: %s is %T", ErrFieldType, name, v)
	}
}

// Int64 returns an integer field of any driver width.
func (r *Record) Int64(name string) (int64, error) {
	v, ok := r.Get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: %s is %T", ErrFieldType, name, v)
	}
}

// MarshalJSON keeps the declared column order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.mapper.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("record: marshal %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
