package running

import (
	"strings"

	"github.com/geekrunners/librunner/distance"
)

// System selects the unit system a race is measured in. It is a closed
// two-value set: every System value fixes the base unit its distances are
// stored in and the display conversions that are correct for them.
type System int

const (
	// Metric stores distances in meters and displays km and km/h.
	Metric System = iota
	// Imperial stores distances in yards and displays miles and mph.
	Imperial
)

// ParseSystem resolves a configuration or flag value into a System.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return Metric, ErrUnknownSystem
	}
}

func (s System) String() string {
	if s == Imperial {
		return "imperial"
	}
	return "metric"
}

// SplitDistance returns the base-unit length of one split:
// 1 km in meters, or 1 mile in yards.
func (s System) SplitDistance() int64 {
	if s == Imperial {
		return distance.YardsPerMile
	}
	return distance.MetersPerKilometer
}

// BaseUnit returns the symbol of the canonical unit distances are stored in.
func (s System) BaseUnit() string {
	if s == Imperial {
		return "yd"
	}
	return "m"
}

// SplitUnit returns the name of the display unit paces are quoted per.
func (s System) SplitUnit() string {
	if s == Imperial {
		return "mile"
	}
	return "km"
}

// SpeedUnit returns the name of the display speed unit.
func (s System) SpeedUnit() string {
	if s == Imperial {
		return "mph"
	}
	return "km/h"
}

// DisplayDistance converts a canonical distance to km or miles.
func (s System) DisplayDistance(d int64) float64 {
	if s == Imperial {
		return distance.ToMile(d)
	}
	return distance.ToKm(d)
}

// DisplaySpeed converts a speed in base units per second to km/h or mph.
func (s System) DisplaySpeed(baseUnitsPerSecond float64) float64 {
	if s == Imperial {
		return distance.ToMilesPerHour(baseUnitsPerSecond)
	}
	return distance.ToKmPerHour(baseUnitsPerSecond)
}
