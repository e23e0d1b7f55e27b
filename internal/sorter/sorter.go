// Package sorter classifies a physical package into a handling category
// from its three dimensions and mass. All operations are pure functions
// over the four measurements; nothing is retained between calls.
package sorter

import (
	"fmt"
	"math"
)

// Thresholds for the bulky and heavy predicates. All are inclusive.
const (
	BulkyVolume    = 1_000_000 // cm³
	BulkyDimension = 150       // cm
	HeavyMass      = 20        // kg
)

// Result is the full outcome of a detailed classification. It echoes the
// inputs alongside the derived facts so a caller can render the decision
// without recomputing anything.
type Result struct {
	Width  float64
	Height float64
	Length float64
	Mass   float64

	Volume         float64
	Classification Classification
	Bulky          bool
	Heavy          bool
	Reason         string
}

// Validate checks the four package measurements. Non-positivity is checked
// across all inputs before finiteness, so a value that is both (e.g. -Inf)
// reports ErrInvalidRange. NaN fails no relational comparison, so it slips
// past the positivity check and is caught as ErrNotFinite — this ordering is
// observable and relied upon by callers.
func Validate(width, height, length, mass float64) error {
	for _, v := range [4]float64{width, height, length, mass} {
		if v <= 0 {
			return ErrInvalidRange
		}
	}
	for _, v := range [4]float64{width, height, length, mass} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return ErrNotFinite
		}
	}
	return nil
}

// IsBulky reports whether a package needs oversize handling: volume of at
// least BulkyVolume cm³, or any single dimension of at least BulkyDimension cm.
func IsBulky(width, height, length float64) bool {
	if width*height*length >= BulkyVolume {
		return true
	}
	return width >= BulkyDimension || height >= BulkyDimension || length >= BulkyDimension
}

// IsHeavy reports whether a package needs overweight handling.
func IsHeavy(mass float64) bool {
	return mass >= HeavyMass
}

// Classify validates the measurements and maps them to a handling category.
// Bulky and heavy together reject the package; either alone routes it to
// special handling.
func Classify(width, height, length, mass float64) (Classification, error) {
	if err := Validate(width, height, length, mass); err != nil {
		return "", err
	}

	bulky := IsBulky(width, height, length)
	heavy := IsHeavy(mass)

	switch {
	case bulky && heavy:
		return Rejected, nil
	case bulky || heavy:
		return Special, nil
	default:
		return Standard, nil
	}
}

// ClassifyWithDetail validates the measurements and returns the full result
// record, including the numeric facts and a human-readable reason for the
// decision. The predicates are computed once and drive both the category and
// the reason.
func ClassifyWithDetail(width, height, length, mass float64) (*Result, error) {
	if err := Validate(width, height, length, mass); err != nil {
		return nil, err
	}

	volume := width * height * length
	bulky := IsBulky(width, height, length)
	heavy := IsHeavy(mass)

	var class Classification
	switch {
	case bulky && heavy:
		class = Rejected
	case bulky || heavy:
		class = Special
	default:
		class = Standard
	}

	return &Result{
		Width:          width,
		Height:         height,
		Length:         length,
		Mass:           mass,
		Volume:         volume,
		Classification: class,
		Bulky:          bulky,
		Heavy:          heavy,
		Reason:         reason(width, height, length, mass, volume, bulky, heavy),
	}, nil
}

// reason builds the explanation for a classification. Rejection wins; a
// bulky-only package distinguishes which sub-condition fired (volume,
// dimension, or both); a heavy-only package cites its mass.
func reason(width, height, length, mass, volume float64, bulky, heavy bool) string {
	switch {
	case bulky && heavy:
		return fmt.Sprintf("Package is both bulky and heavy (volume %s cm³, mass %s kg)",
			formatNumber(volume), formatNumber(mass))
	case bulky:
		overVolume := volume >= BulkyVolume
		overDimension := width >= BulkyDimension || height >= BulkyDimension || length >= BulkyDimension
		switch {
		case overVolume && overDimension:
			return fmt.Sprintf("Bulky: volume %s cm³ reaches %s cm³ and a dimension reaches %d cm",
				formatNumber(volume), formatNumber(BulkyVolume), BulkyDimension)
		case overVolume:
			return fmt.Sprintf("Bulky: volume %s cm³ reaches %s cm³",
				formatNumber(volume), formatNumber(BulkyVolume))
		default:
			return fmt.Sprintf("Bulky: longest dimension %s cm reaches %d cm",
				formatNumber(math.Max(width, math.Max(height, length))), BulkyDimension)
		}
	case heavy:
		return fmt.Sprintf("Heavy: mass %s kg reaches %d kg", formatNumber(mass), HeavyMass)
	default:
		return "Package meets standard handling criteria"
	}
}

// formatNumber renders a measurement without trailing decimal noise:
// whole values print as integers, fractional values keep two decimals.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
