package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12", 1200, true},
		{"0.5", 50, true},
		{".5", 50, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"0", 0, false},
		{"0.00", 0, false},
		{"1.2.3", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("%q: unexpected error %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("%q: got %d, want %d", tc.in, got, tc.want)
			}
		} else if err == nil {
			t.Fatalf("%q: expected error, got %d", tc.in, got)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 1250})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "1250" {
		t.Fatalf("expected bare cents, got %s", b)
	}
	var m Money
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Cents != 1250 {
		t.Fatalf("round trip mismatch: %d", m.Cents)
	}
}

func TestMoneyUnits(t *testing.T) {
	if got := (Money{Cents: 1450}).Units(); got != 14.50 {
		t.Fatalf("got %v, want 14.50", got)
	}
}
