package ym

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{"2025-07", New(2025, time.July), false},
		{"2025-7", New(2025, time.July), false}, // permissive single digit
		{"2025-12", New(2025, time.December), false},
		{"2025", Month{}, true},
		{"07-2025", Month{}, true},
		{"garbage", Month{}, true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(2025, time.July).String(); got != "2025-07" {
		t.Errorf("String() = %q, want %q", got, "2025-07")
	}
}

func TestAddNormalizes(t *testing.T) {
	if got := New(2025, time.December).Add(1); got != New(2026, time.January) {
		t.Errorf("December + 1 = %s, want 2026-01", got)
	}
	if got := New(2025, time.January).Add(-1); got != New(2024, time.December) {
		t.Errorf("January - 1 = %s, want 2024-12", got)
	}
	if got := New(2025, time.January).Add(25); got != New(2027, time.February) {
		t.Errorf("2025-01 + 25 = %s, want 2027-02", got)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2025, time.June)
	b := New(2025, time.July)

	if !a.Before(b) || b.Before(a) {
		t.Error("Before() is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After() is wrong")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare() is wrong")
	}
}

func TestTo(t *testing.T) {
	var got []Month
	for m := range New(2025, time.November).To(New(2026, time.February)) {
		got = append(got, m)
	}
	want := []Month{
		New(2025, time.November),
		New(2025, time.December),
		New(2026, time.January),
		New(2026, time.February),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("To()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestJSONRoundtrip(t *testing.T) {
	in := New(2025, time.July)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(b) != `"2025-07"` {
		t.Errorf("Marshal() = %s, want \"2025-07\"", b)
	}
	var out Month
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if out != in {
		t.Errorf("roundtrip = %s, want %s", out, in)
	}
}
