package internal

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayUnit is the unit distances are shown in. Samples are always in meters.
type DisplayUnit int

const (
	UnitUnknown DisplayUnit = iota
	UnitMiles
	UnitKilometers
)

const (
	metersPerMile      = 1609.344
	metersPerKilometer = 1000.0
)

func ParseDisplayUnit(s string) (DisplayUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "miles", "mile", "mi":
		return UnitMiles, nil
	case "kilometers", "kilometres", "kilometer", "km":
		return UnitKilometers, nil
	}
	return UnitUnknown, &ConfigurationError{Field: "unit", Value: s}
}

func (u DisplayUnit) String() string {
	switch u {
	case UnitMiles:
		return "miles"
	case UnitKilometers:
		return "kilometers"
	}
	return "unknown"
}

// Abbrev returns the short label printed after values, e.g. "mi".
func (u DisplayUnit) Abbrev() string {
	switch u {
	case UnitMiles:
		return "mi"
	case UnitKilometers:
		return "km"
	}
	return ""
}

func (u DisplayUnit) Valid() bool {
	return u == UnitMiles || u == UnitKilometers
}

func (u DisplayUnit) metersPer() (float64, error) {
	switch u {
	case UnitMiles:
		return metersPerMile, nil
	case UnitKilometers:
		return metersPerKilometer, nil
	}
	return 0, &ConfigurationError{Field: "unit"}
}

// FromBase converts meters to the display unit.
func (u DisplayUnit) FromBase(meters float64) (float64, error) {
	per, err := u.metersPer()
	if err != nil {
		return 0, err
	}
	return meters / per, nil
}

// ToBase converts a value in the display unit back to meters.
func (u DisplayUnit) ToBase(value float64) (float64, error) {
	per, err := u.metersPer()
	if err != nil {
		return 0, err
	}
	return value * per, nil
}

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber prints v with grouping and at most two fraction digits: 1234.567 -> "1,234.57".
func FormatNumber(v float64) string {
	return numberPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatDistance prints v followed by the unit abbreviation. Zero prints as "0 mi", never blank.
func FormatDistance(v float64, u DisplayUnit) string {
	return FormatNumber(v) + " " + u.Abbrev()
}
