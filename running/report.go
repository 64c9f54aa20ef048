package running

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/geekrunners/librunner/duration"
)

// Report is a display-ready summary of one running evaluated against one
// race. Distances and speeds are in the race's display units, durations
// in the textual HH:MM:SS contract.
type Report struct {
	ID          uuid.UUID `json:"id"`
	System      string    `json:"system"`
	Distance    float64   `json:"distance"`
	Unit        string    `json:"unit"`
	Duration    string    `json:"duration"`
	AveragePace string    `json:"average_pace"`
	Speed       float64   `json:"speed"`
	SpeedUnit   string    `json:"speed_unit"`
	Splits      int64     `json:"splits"`
}

// NewReport evaluates the running against the race and assembles a
// summary. It fails if the race has no distance or the running no
// duration, the same preconditions as AveragePace and Speed.
func NewReport(race Race, run Running) (Report, error) {
	pace, err := run.AveragePace(race)
	if err != nil {
		return Report{}, fmt.Errorf("average pace: %w", err)
	}
	speed, err := run.Speed(race)
	if err != nil {
		return Report{}, fmt.Errorf("speed: %w", err)
	}

	system := race.System()
	displaySpeed, _ := decimal.NewFromFloat(system.DisplaySpeed(speed)).Round(2).Float64()
	displayDistance, _ := decimal.NewFromFloat(system.DisplayDistance(race.Distance())).Round(3).Float64()

	return Report{
		ID:          uuid.New(),
		System:      system.String(),
		Distance:    displayDistance,
		Unit:        system.SplitUnit(),
		Duration:    duration.Format(run.Duration()),
		AveragePace: duration.FormatPace(pace),
		Speed:       displaySpeed,
		SpeedUnit:   system.SpeedUnit(),
		Splits:      race.NumSplits(),
	}, nil
}

// ToJSON exports the report as a JSON document.
func (rep Report) ToJSON() string {
	data, _ := json.Marshal(rep)
	return string(data)
}
