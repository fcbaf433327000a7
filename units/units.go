// Package units converts lengths between the metric and imperial systems.
package units

import (
	"strings"

	"github.com/pkg/errors"
)

// FeetPerMeter is the number of international feet in one meter.
const FeetPerMeter = 3.28084

// MeasurementSystem selects the unit a length is reported in.
type MeasurementSystem int

const (
	// Metric reports meters. It is the zero value.
	Metric MeasurementSystem = iota
	// Imperial reports feet.
	Imperial
)

// MetersToFeet converts meters to feet.
func MetersToFeet(meters float64) float64 {
	return meters * FeetPerMeter
}

// FeetToMeters converts feet to meters.
func FeetToMeters(feet float64) float64 {
	return feet / FeetPerMeter
}

// FromMeters expresses a length given in meters in this system's unit.
func (s MeasurementSystem) FromMeters(meters float64) float64 {
	if s == Imperial {
		return MetersToFeet(meters)
	}
	return meters
}

// Unit is the abbreviation of the system's length unit.
func (s MeasurementSystem) Unit() string {
	if s == Imperial {
		return "ft"
	}
	return "m"
}

func (s MeasurementSystem) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return "unknown"
	}
}

// ParseMeasurementSystem parses "metric" (or "meters") and "imperial", ignoring case. The empty
// string is metric.
func ParseMeasurementSystem(name string) (MeasurementSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "metric", "meters":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return Metric, errors.Errorf("unknown measurement system %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s MeasurementSystem) MarshalText() ([]byte, error) {
	if s != Metric && s != Imperial {
		return nil, errors.Errorf("invalid measurement system %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MeasurementSystem) UnmarshalText(text []byte) error {
	parsed, err := ParseMeasurementSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
