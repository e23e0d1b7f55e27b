package sorter

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		m       float64
		want    error
	}{
		{"all valid", 10, 10, 10, 5, nil},
		{"zero width", 0, 10, 10, 5, ErrInvalidRange},
		{"zero mass", 10, 10, 10, 0, ErrInvalidRange},
		{"negative height", 10, -1, 10, 5, ErrInvalidRange},
		{"positive infinity", math.Inf(1), 10, 10, 5, ErrNotFinite},
		{"infinite mass", 10, 10, 10, math.Inf(1), ErrNotFinite},
		{"nan length", 10, 10, math.NaN(), 5, ErrNotFinite},
		{"nan mass", 10, 10, 10, math.NaN(), ErrNotFinite},
		// -Inf is non-positive, so the range check wins.
		{"negative infinity", math.Inf(-1), 10, 10, 5, ErrInvalidRange},
		// A non-positive field is reported before a NaN field regardless of order.
		{"nan before zero", math.NaN(), 10, 10, 0, ErrInvalidRange},
		{"zero before nan", 0, 10, math.NaN(), 5, ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.w, tt.h, tt.l, tt.m)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("Validate(%v, %v, %v, %v) = %v, want %v", tt.w, tt.h, tt.l, tt.m, got, tt.want)
			}
		})
	}
}

func TestValidateMessages(t *testing.T) {
	if got := ErrInvalidRange.Error(); got != "Package dimensions and mass must be positive values greater than 0" {
		t.Errorf("ErrInvalidRange message = %q", got)
	}
	if got := ErrNotFinite.Error(); got != "Package dimensions and mass must be finite numbers" {
		t.Errorf("ErrNotFinite message = %q", got)
	}
}

func TestIsBulky(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		want    bool
	}{
		{"small cube", 10, 10, 10, false},
		{"volume exactly at limit", 100, 100, 100, true},
		{"volume just below limit", 99.99, 99.99, 99.99, false},
		{"width at limit", 150, 10, 10, true},
		{"height at limit", 10, 150, 10, true},
		{"length at limit", 10, 10, 150, true},
		{"dimension just below limit", 149.99, 10, 10, false},
		{"dimension over limit", 200, 1, 1, true},
	}

	for _, tt := range tests {
		got := IsBulky(tt.w, tt.h, tt.l)
		if got != tt.want {
			t.Errorf("IsBulky(%v, %v, %v) = %v, want %v (%s)", tt.w, tt.h, tt.l, got, tt.want, tt.name)
		}
	}
}

func TestIsHeavy(t *testing.T) {
	tests := []struct {
		mass float64
		want bool
	}{
		{5, false},
		{19.99, false},
		{20, true},
		{25, true},
	}

	for _, tt := range tests {
		got := IsHeavy(tt.mass)
		if got != tt.want {
			t.Errorf("IsHeavy(%v) = %v, want %v", tt.mass, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		m       float64
		want    Classification
	}{
		{"small and light", 10, 10, 10, 5, Standard},
		{"volume bulky only", 100, 100, 100, 15, Special},
		{"dimension bulky only", 150, 10, 10, 15, Special},
		{"heavy only", 50, 50, 50, 20, Special},
		{"bulky and heavy", 200, 100, 100, 25, Rejected},
		{"just under every limit", 99.99, 99.99, 99.99, 10, Standard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.w, tt.h, tt.l, tt.m)
			if err != nil {
				t.Fatalf("Classify(%v, %v, %v, %v) returned error: %v", tt.w, tt.h, tt.l, tt.m, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%v, %v, %v, %v) = %q, want %q", tt.w, tt.h, tt.l, tt.m, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		m       float64
		want    error
	}{
		{"zero width", 0, 10, 10, 5, ErrInvalidRange},
		{"infinite width", math.Inf(1), 10, 10, 5, ErrNotFinite},
		{"nan height", 10, math.NaN(), 10, 5, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Classify(tt.w, tt.h, tt.l, tt.m); !errors.Is(err, tt.want) {
				t.Errorf("Classify error = %v, want %v", err, tt.want)
			}
			if _, err := ClassifyWithDetail(tt.w, tt.h, tt.l, tt.m); !errors.Is(err, tt.want) {
				t.Errorf("ClassifyWithDetail error = %v, want %v", err, tt.want)
			}
		})
	}
}

// Rejection must win whenever both predicates hold, whichever bulky
// sub-condition fired.
func TestRejectionPriority(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
	}{
		{"bulky by volume", 100, 100, 100},
		{"bulky by dimension", 150, 1, 1},
		{"bulky by both", 200, 200, 200},
	}

	for _, tt := range tests {
		got, err := Classify(tt.w, tt.h, tt.l, HeavyMass)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != Rejected {
			t.Errorf("%s: Classify = %q, want %q", tt.name, got, Rejected)
		}
	}
}

func TestClassifyWithDetail(t *testing.T) {
	res, err := ClassifyWithDetail(100, 100, 100, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Volume != 1_000_000 {
		t.Errorf("Volume = %v, want 1000000", res.Volume)
	}
	if res.Classification != Special {
		t.Errorf("Classification = %q, want %q", res.Classification, Special)
	}
	if !res.Bulky || res.Heavy {
		t.Errorf("predicates = (bulky=%v, heavy=%v), want (true, false)", res.Bulky, res.Heavy)
	}
	if res.Width != 100 || res.Height != 100 || res.Length != 100 || res.Mass != 15 {
		t.Errorf("inputs not echoed: %+v", res)
	}
	if res.Reason == "" {
		t.Error("expected a non-empty reason")
	}
}

// The detailed entry point must always agree with the plain one.
func TestDetailAgreesWithClassify(t *testing.T) {
	inputs := [][4]float64{
		{10, 10, 10, 5},
		{100, 100, 100, 15},
		{150, 10, 10, 15},
		{50, 50, 50, 20},
		{200, 100, 100, 25},
		{99.99, 99.99, 99.99, 10},
		{149.99, 149.99, 44.44, 19.99},
		{1, 1, 1, 1000},
	}

	for _, in := range inputs {
		class, err := Classify(in[0], in[1], in[2], in[3])
		if err != nil {
			t.Fatalf("Classify(%v): %v", in, err)
		}
		res, err := ClassifyWithDetail(in[0], in[1], in[2], in[3])
		if err != nil {
			t.Fatalf("ClassifyWithDetail(%v): %v", in, err)
		}
		if res.Classification != class {
			t.Errorf("ClassifyWithDetail(%v) = %q, Classify = %q", in, res.Classification, class)
		}
	}
}

func TestReasonSelection(t *testing.T) {
	tests := []struct {
		name    string
		w, h, l float64
		m       float64
		want    string
	}{
		{"rejected", 200, 100, 100, 25,
			"Package is both bulky and heavy (volume 2000000 cm³, mass 25 kg)"},
		{"bulky by volume and dimension", 150, 100, 100, 10,
			"Bulky: volume 1500000 cm³ reaches 1000000 cm³ and a dimension reaches 150 cm"},
		{"bulky by volume only", 100, 100, 100, 10,
			"Bulky: volume 1000000 cm³ reaches 1000000 cm³"},
		{"bulky by dimension only", 150, 10, 10, 10,
			"Bulky: longest dimension 150 cm reaches 150 cm"},
		{"heavy only", 50, 50, 50, 20,
			"Heavy: mass 20 kg reaches 20 kg"},
		{"standard", 10, 10, 10, 5,
			"Package meets standard handling criteria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ClassifyWithDetail(tt.w, tt.h, tt.l, tt.m)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Reason != tt.want {
				t.Errorf("Reason = %q, want %q", res.Reason, tt.want)
			}
		})
	}
}

// Pure function: identical inputs always produce identical results.
func TestIdempotence(t *testing.T) {
	a, err := ClassifyWithDetail(149.99, 99.5, 12.25, 19.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := ClassifyWithDetail(149.99, 99.5, 12.25, 19.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Errorf("results differ:\n%+v\n%+v", *a, *b)
	}
}
