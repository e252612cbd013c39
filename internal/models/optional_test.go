package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalCSV(t *testing.T) {
	tests := []struct {
		raw     string
		present bool
	}{
		{"道路修繕", true},
		{"", false},
		{"NaN", false},
		{"null", false},
		{" N/A ", false},
		{"  ", true},
		{"Nancy", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var text Text
			require.NoError(t, text.UnmarshalCSV(tt.raw))
			assert.Equal(t, tt.present, text.Present())
			if tt.present {
				assert.Equal(t, tt.raw, text.String())
			}
		})
	}
}

func TestText_AbsentNeverMatches(t *testing.T) {
	var absent Text
	assert.False(t, absent.Equals(""))
	assert.False(t, absent.Contains(""))

	present := NewText("Budget review")
	assert.True(t, present.Equals("Budget review"))
	assert.False(t, present.Equals("budget review"))
	assert.True(t, present.Contains("review"))
	assert.False(t, present.Contains("Review"))
	assert.True(t, present.Contains(""))
}

func TestText_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Text `json:"a"`
		B Text `json:"b"`
	}{A: NewText("教育局")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"教育局","b":null}`, string(data))
}

func TestParseCost(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		numeric bool
		display string
	}{
		{"integer", "1500000", true, true, "1500000"},
		{"float export", "1500000.0", true, true, "1500000"},
		{"thousands separators", " 2,300,000 ", true, true, "2300000"},
		{"empty", "", false, false, ""},
		{"nan marker", "nan", false, false, ""},
		{"free text kept", "約三百萬", true, false, "約三百萬"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := ParseCost(tt.raw)
			assert.Equal(t, tt.present, cost.Present())
			_, numeric := cost.Amount()
			assert.Equal(t, tt.numeric, numeric)
			assert.Equal(t, tt.display, cost.String())
		})
	}
}

func TestCost_CSVAndJSON(t *testing.T) {
	var cost Cost
	require.NoError(t, cost.UnmarshalCSV("42.50"))
	amount, ok := cost.Amount()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("42.5")))

	out, err := cost.MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "42.5", out)

	data, err := json.Marshal([]Cost{NewCost(decimal.NewFromInt(7)), {}, ParseCost("TBD")})
	require.NoError(t, err)
	assert.JSONEq(t, `[7,null,"TBD"]`, string(data))
}
