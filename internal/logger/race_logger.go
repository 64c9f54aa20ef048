// Package logger provides race-computation specific logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/geekrunners/librunner/duration"
	"github.com/geekrunners/librunner/running"
)

// RaceLogger provides dedicated logging for race computations.
type RaceLogger struct {
	*logrus.Entry
}

// NewRaceLogger creates a new race logger.
func NewRaceLogger(baseLogger *logrus.Logger) *RaceLogger {
	return &RaceLogger{
		Entry: baseLogger.WithField("component", "race"),
	}
}

// LogPace logs a completed average pace computation.
func (rl *RaceLogger) LogPace(race running.Race, run running.Running, pace time.Duration) {
	rl.WithFields(logrus.Fields{
		"system":       race.System().String(),
		"distance":     race.Distance(),
		"base_unit":    race.System().BaseUnit(),
		"duration":     duration.Format(run.Duration()),
		"average_pace": duration.FormatPace(pace),
		"pace_unit":    race.System().SplitUnit(),
	}).Info("Average pace computed")
}

// LogSpeed logs a completed speed computation.
func (rl *RaceLogger) LogSpeed(race running.Race, run running.Running, displaySpeed float64) {
	rl.WithFields(logrus.Fields{
		"system":     race.System().String(),
		"distance":   race.Distance(),
		"base_unit":  race.System().BaseUnit(),
		"duration":   duration.Format(run.Duration()),
		"speed":      displaySpeed,
		"speed_unit": race.System().SpeedUnit(),
	}).Info("Speed computed")
}

// LogSplitPlan logs a generated split plan.
func (rl *RaceLogger) LogSplitPlan(race running.Race, strategy string, degree time.Duration, numSplits int) {
	rl.WithFields(logrus.Fields{
		"system":     race.System().String(),
		"distance":   race.Distance(),
		"strategy":   strategy,
		"degree_s":   int64(degree / time.Second),
		"num_splits": numSplits,
	}).Info("Split plan generated")
}

// LogComputationRejected logs a computation refused by a precondition.
func (rl *RaceLogger) LogComputationRejected(operation string, err error) {
	rl.WithFields(logrus.Fields{
		"operation": operation,
		"reason":    err.Error(),
	}).Warn("Computation rejected")
}
