package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// nullMarkers are the cell values treated as missing data, in addition to the
// empty cell. They match what spreadsheet and dataframe exports commonly write.
var nullMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-NaN": {}, "-nan": {},
	"<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {},
	"None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsNullCell reports whether a raw cell denotes a missing value.
func IsNullCell(raw string) bool {
	if raw == "" {
		return true
	}
	_, ok := nullMarkers[strings.TrimSpace(raw)]
	return ok
}

// Text is an optional string cell. The zero value is absent.
type Text struct {
	value string
	valid bool
}

// NewText returns a present Text holding s.
func NewText(s string) Text {
	return Text{value: s, valid: true}
}

// Present reports whether the cell holds a value.
func (t Text) Present() bool {
	return t.valid
}

// Get returns the value and whether it is present.
func (t Text) Get() (string, bool) {
	return t.value, t.valid
}

// String returns the value, or "" when absent.
func (t Text) String() string {
	return t.value
}

// Equals reports exact equality. Absent never matches.
func (t Text) Equals(s string) bool {
	return t.valid && t.value == s
}

// Contains reports case-sensitive substring containment. Absent never matches.
func (t Text) Contains(sub string) bool {
	return t.valid && strings.Contains(t.value, sub)
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (t *Text) UnmarshalCSV(raw string) error {
	if IsNullCell(raw) {
		*t = Text{}
		return nil
	}
	*t = NewText(raw)
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (t Text) MarshalCSV() (string, error) {
	return t.value, nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

// Cost is an optional numeric cell. Cells that do not parse as a number are
// kept verbatim so they can still be displayed.
type Cost struct {
	amount  decimal.Decimal
	raw     string
	numeric bool
	valid   bool
}

// NewCost returns a present numeric Cost.
func NewCost(amount decimal.Decimal) Cost {
	return Cost{amount: amount, raw: amount.String(), numeric: true, valid: true}
}

// ParseCost parses a raw cell. Thousands separators and surrounding spaces
// are ignored; missing-value markers produce an absent Cost.
func ParseCost(raw string) Cost {
	if IsNullCell(raw) {
		return Cost{}
	}
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Cost{raw: raw, valid: true}
	}
	return Cost{amount: amount, raw: raw, numeric: true, valid: true}
}

// Present reports whether the cell holds a value.
func (c Cost) Present() bool {
	return c.valid
}

// Amount returns the numeric value and whether the cell held a number.
func (c Cost) Amount() (decimal.Decimal, bool) {
	return c.amount, c.valid && c.numeric
}

// String renders the amount, or the raw cell when it was not numeric.
func (c Cost) String() string {
	if !c.valid {
		return ""
	}
	if c.numeric {
		return c.amount.String()
	}
	return c.raw
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (c *Cost) UnmarshalCSV(raw string) error {
	*c = ParseCost(raw)
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (c Cost) MarshalCSV() (string, error) {
	return c.String(), nil
}

func (c Cost) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("null"), nil
	}
	if c.numeric {
		return []byte(c.amount.String()), nil
	}
	return json.Marshal(c.raw)
}
