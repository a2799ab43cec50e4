package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrUnsupportedJSONType = errors.New("unsupported JSON type")

// LooseString accepts a JSON string or number and keeps its textual form.
// null decodes to the empty string.
type LooseString string

// LooseInt accepts a JSON integer or a string holding one.
// null and "" decode to zero.
type LooseInt int

func decodeScalar(b []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *LooseString) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = LooseString(val)
	case json.Number:
		*s = LooseString(val.String())
	default:
		return fmt.Errorf("%w: %T for text field", ErrUnsupportedJSONType, v)
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}

func (i *LooseInt) UnmarshalJSON(b []byte) error {
	v, err := decodeScalar(b)
	if err != nil {
		return err
	}

	switch val := v.(type) {
	case nil:
		*i = 0
		return nil
	case json.Number:
		n, err := parseInteger(val.String())
		if err != nil {
			return err
		}
		*i = LooseInt(n)
		return nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			*i = 0
			return nil
		}
		n, err := parseInteger(trimmed)
		if err != nil {
			return err
		}
		*i = LooseInt(n)
		return nil
	default:
		return fmt.Errorf("%w: %T for integer field", ErrUnsupportedJSONType, v)
	}
}

func (i LooseInt) Int() int {
	return int(i)
}

// parseInteger accepts decimal or integral float notation within the int32
// range of the integer columns.
func parseInteger(raw string) (int, error) {
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int(n), nil
	} else if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", raw, err)
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("invalid integer %q", raw)
	}
	return int(f), nil
}
