package running

import "time"

// Race is an immutable race distance measured in the base unit of its
// System: meters under Metric, yards under Imperial. A Race carries no
// elapsed time; pace and speed come from evaluating a Running against it.
type Race struct {
	distance int64
	system   System
}

// NewRace creates a race of the given distance in the system's base unit.
func NewRace(system System, dist int64) (Race, error) {
	if dist < 0 {
		return Race{}, ErrNegativeDistance
	}
	return Race{distance: dist, system: system}, nil
}

// NewMetricRace creates a race measured in meters.
func NewMetricRace(meters int64) (Race, error) {
	return NewRace(Metric, meters)
}

// NewImperialRace creates a race measured in yards.
func NewImperialRace(yards int64) (Race, error) {
	return NewRace(Imperial, yards)
}

// NewRaceFromSplits creates a race whose distance is one split distance
// per recorded split: a five-split metric race is 5000 m.
func NewRaceFromSplits(system System, splits []time.Duration) Race {
	return Race{
		distance: int64(len(splits)) * system.SplitDistance(),
		system:   system,
	}
}

// Distance returns the race distance in the system's base unit.
func (r Race) Distance() int64 {
	return r.distance
}

// System returns the unit system the race is measured in.
func (r Race) System() System {
	return r.system
}

// NumSplits returns how many splits the race divides into, counting a
// trailing partial split as a full one.
func (r Race) NumSplits() int64 {
	split := r.system.SplitDistance()
	n := r.distance / split
	if r.distance%split > 0 {
		n++
	}
	return n
}
