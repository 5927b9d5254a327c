package dbtypes

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2024-03")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Year() != 2024 || p.Month() != time.March {
		t.Fatalf("unexpected period %s", p)
	}
	if p.String() != "2024-03" {
		t.Fatalf("unexpected string %q", p.String())
	}

	for _, raw := range []string{"", "2024", "2024-13", "03-2024", "2024-3x"} {
		if _, err := ParsePeriod(raw); err == nil {
			t.Fatalf("expected parse error for %q", raw)
		}
	}
}

func TestPeriodOrdering(t *testing.T) {
	jan := NewPeriod(2024, time.January)
	feb := NewPeriod(2024, time.February)
	prevDec := NewPeriod(2023, time.December)

	if !prevDec.Before(jan) || !jan.Before(feb) {
		t.Fatal("expected chronological ordering")
	}
	if feb.Before(jan) || jan.Before(jan) {
		t.Fatal("Before must be strict")
	}
	// String form sorts the same way the struct compares.
	if !(prevDec.String() < jan.String() && jan.String() < feb.String()) {
		t.Fatal("string form should sort chronologically")
	}
}

func TestPeriodScanValue(t *testing.T) {
	var p Period
	if err := p.Scan("2024-07"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if p.String() != "2024-07" {
		t.Fatalf("unexpected scan result %s", p)
	}

	if err := p.Scan([]byte("2025-01")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if p.String() != "2025-01" {
		t.Fatalf("unexpected scan result %s", p)
	}

	if err := p.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !p.IsZero() {
		t.Fatalf("expected zero period after nil scan, got %s", p)
	}

	v, err := NewPeriod(2024, time.July).Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2024-07" {
		t.Fatalf("unexpected driver value %v", v)
	}

	v, err = Period{}.Value()
	if err != nil {
		t.Fatalf("zero value: %v", err)
	}
	if v != nil {
		t.Fatalf("zero period should store NULL, got %v", v)
	}
}

func TestPeriodJSON(t *testing.T) {
	type payload struct {
		Period Period `json:"period"`
	}

	var got payload
	if err := json.Unmarshal([]byte(`{"period": "2024-11"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Period.Year() != 2024 || got.Period.Month() != time.November {
		t.Fatalf("unexpected period %s", got.Period)
	}

	out, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"period":"2024-11"}` {
		t.Fatalf("unexpected json %s", out)
	}

	if err := json.Unmarshal([]byte(`{"period": 7}`), &got); err == nil {
		t.Fatal("expected error for non-string period")
	}
}
