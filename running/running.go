package running

import "time"

// Running is an immutable recorded (or planned) elapsed time. It holds no
// race of its own, so one Running can be evaluated against any number of
// race distances.
type Running struct {
	duration time.Duration
}

// NewRunning creates a running that took the given duration.
func NewRunning(d time.Duration) (Running, error) {
	if d < 0 {
		return Running{}, ErrNegativeDuration
	}
	return Running{duration: d}, nil
}

// NewRunningFromPace creates a running whose duration is the time needed
// to finish the race at the given constant pace. The result is truncated
// to whole seconds, so deriving a running from a truncated pace loses up
// to one pace-second per split.
func NewRunningFromPace(race Race, pace time.Duration) Running {
	splits := float64(race.Distance()) / float64(race.System().SplitDistance())
	secs := splits * pace.Seconds()
	return Running{duration: time.Duration(secs) * time.Second}
}

// NewRunningFromSplits creates a running whose duration is the sum of the
// recorded split times.
func NewRunningFromSplits(splits []time.Duration) Running {
	var total time.Duration
	for _, split := range splits {
		total += split
	}
	return Running{duration: total}
}

// Duration returns the elapsed time of the running.
func (r Running) Duration() time.Duration {
	return r.duration
}

// AveragePace returns the elapsed time per display unit of the race:
// per kilometer under Metric, per mile under Imperial. The pace is
// truncated to whole seconds.
func (r Running) AveragePace(race Race) (time.Duration, error) {
	if race.Distance() == 0 {
		return 0, ErrZeroDistance
	}
	secs := float64(race.System().SplitDistance()) * r.duration.Seconds() / float64(race.Distance())
	return time.Duration(secs) * time.Second, nil
}

// Speed returns the covered distance per second in the race's base unit:
// m/s under Metric, yd/s under Imperial. Callers convert to km/h or mph
// through the distance package or System.DisplaySpeed.
func (r Running) Speed(race Race) (float64, error) {
	if r.duration == 0 {
		return 0, ErrZeroDuration
	}
	return float64(race.Distance()) / r.duration.Seconds(), nil
}

// Splits returns one split per race split, each at the average pace.
func (r Running) Splits(race Race) ([]time.Duration, error) {
	pace, err := r.AveragePace(race)
	if err != nil {
		return nil, err
	}
	return r.SplitsWithPace(race, pace), nil
}

// SplitsWithPace returns one split per race split, each at the given pace.
func (r Running) SplitsWithPace(race Race, pace time.Duration) []time.Duration {
	splits := make([]time.Duration, race.NumSplits())
	for i := range splits {
		splits[i] = pace
	}
	return splits
}

// NegativeSplits plans the race from a higher to a lower pace. The degree
// is the variation from the average pace in seconds: the plan starts at
// average+degree and speeds up by one second per block of splits, ending
// around average-degree.
func (r Running) NegativeSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	return r.variedSplits(race, degree, -time.Second)
}

// PositiveSplits plans the race from a lower to a higher pace, the mirror
// image of NegativeSplits.
func (r Running) PositiveSplits(race Race, degree time.Duration) ([]time.Duration, error) {
	return r.variedSplits(race, degree, time.Second)
}

func (r Running) variedSplits(race Race, degree, step time.Duration) ([]time.Duration, error) {
	average, err := r.AveragePace(race)
	if err != nil {
		return nil, err
	}
	if degree >= average {
		return nil, ErrPaceVariation
	}

	// paces span average±degree, one second apart
	variation := 2*int64(degree/time.Second) + 1
	numSplits := race.NumSplits()
	// number of consecutive splits sharing a pace
	block := numSplits / variation

	// negative splits start slow and speed up; positive splits the reverse
	pace := average - degree
	if step < 0 {
		pace = average + degree
	}

	splits := make([]time.Duration, 0, numSplits)
	var blockCount int64
	for n := int64(0); n < numSplits; n++ {
		if blockCount == block {
			pace += step
			blockCount = 0
		}
		splits = append(splits, pace)
		blockCount++
	}
	return splits, nil
}
