// Package distance converts canonical race distances and speeds into the
// units runners read on a watch: kilometers, miles, km/h and mph.
//
// Conversion factors are expressed as exact ratios of the defined
// constants rather than truncated decimal literals, so repeated
// conversions do not compound rounding error.
package distance

// Defined unit relationships.
const (
	MetersPerKilometer = 1000
	YardsPerMile       = 1760
	SecondsPerHour     = 3600

	// international mile and foot, defined exactly in meters
	MetersPerMile = 1609.344
	MetersPerFoot = 0.3048
)

// ToKm converts a distance in meters to kilometers.
func ToKm(meters int64) float64 {
	return float64(meters) / MetersPerKilometer
}

// ToMile converts a distance in yards to miles.
func ToMile(yards int64) float64 {
	return float64(yards) / YardsPerMile
}

// ToKmPerHour converts a speed in meters per second to kilometers per hour.
func ToKmPerHour(metersPerSecond float64) float64 {
	return metersPerSecond * SecondsPerHour / MetersPerKilometer
}

// ToMilesPerHour converts a speed in yards per second to miles per hour.
func ToMilesPerHour(yardsPerSecond float64) float64 {
	return yardsPerSecond * SecondsPerHour / YardsPerMile
}

// MileToKm converts miles to kilometers.
func MileToKm(miles float64) float64 {
	return miles * MetersPerMile / MetersPerKilometer
}

// KmToMile converts kilometers to miles.
func KmToMile(km float64) float64 {
	return km * MetersPerKilometer / MetersPerMile
}

// MeterToFeet converts meters to feet.
func MeterToFeet(meters float64) float64 {
	return meters / MetersPerFoot
}

// FeetToMeter converts feet to meters.
func FeetToMeter(feet float64) float64 {
	return feet * MetersPerFoot
}
