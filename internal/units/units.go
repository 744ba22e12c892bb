// Package units normalizes the many spellings recipes use for measurement
// units into three canonical families: mass in grams, volume in milliliters,
// and plain counts.
package units

import "strings"

// Conversion maps one unit spelling to its canonical unit and the factor
// that converts an amount into that unit.
type Conversion struct {
	Unit   string  `json:"unit"`
	Factor float64 `json:"factor"`
}

// Table maps lowercased unit spellings to their conversions. Tables are
// configuration data loaded at startup and must not be mutated afterwards;
// concurrent reads are safe.
type Table map[string]Conversion

// Standardize converts an amount in the given unit to its canonical unit.
// Unknown units are not an error: the amount is returned unchanged with the
// lowercased, trimmed unit acting as its own canonical unit.
func (t Table) Standardize(amount float64, unit string) (float64, string) {
	key := strings.ToLower(strings.TrimSpace(unit))
	conv, ok := t[key]
	if !ok {
		return amount, key
	}
	return amount * conv.Factor, conv.Unit
}

// Recognized reports whether the unit spelling is present in the table.
func (t Table) Recognized(unit string) bool {
	_, ok := t[strings.ToLower(strings.TrimSpace(unit))]
	return ok
}
