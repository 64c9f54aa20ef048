package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geekrunners/librunner/running"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevels(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLogger("error")
	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := NewLogger("verbose")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestRaceLoggerPace(t *testing.T) {
	log, buf := setupTestLogger()
	raceLogger := NewRaceLogger(log)

	race, err := running.NewMetricRace(42195)
	require.NoError(t, err)
	run, err := running.NewRunning(14400 * time.Second)
	require.NoError(t, err)

	raceLogger.LogPace(race, run, 341*time.Second)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "race", logEntry["component"])
	assert.Equal(t, "metric", logEntry["system"])
	assert.Equal(t, float64(42195), logEntry["distance"])
	assert.Equal(t, "04:00:00", logEntry["duration"])
	assert.Equal(t, "05:41", logEntry["average_pace"])
	assert.Equal(t, "km", logEntry["pace_unit"])
}

func TestRaceLoggerSpeed(t *testing.T) {
	log, buf := setupTestLogger()
	raceLogger := NewRaceLogger(log)

	race, err := running.NewImperialRace(46112)
	require.NoError(t, err)
	run, err := running.NewRunning(14400 * time.Second)
	require.NoError(t, err)

	raceLogger.LogSpeed(race, run, 6.55)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "imperial", logEntry["system"])
	assert.Equal(t, 6.55, logEntry["speed"])
	assert.Equal(t, "mph", logEntry["speed_unit"])
}

func TestRaceLoggerSplitPlan(t *testing.T) {
	log, buf := setupTestLogger()
	raceLogger := NewRaceLogger(log)

	race, err := running.NewMetricRace(42195)
	require.NoError(t, err)

	raceLogger.LogSplitPlan(race, "negative", 5*time.Second, 43)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "negative", logEntry["strategy"])
	assert.Equal(t, float64(5), logEntry["degree_s"])
	assert.Equal(t, float64(43), logEntry["num_splits"])
}

func TestRaceLoggerComputationRejected(t *testing.T) {
	log, buf := setupTestLogger()
	raceLogger := NewRaceLogger(log)

	raceLogger.LogComputationRejected("average_pace", running.ErrZeroDistance)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "average_pace", logEntry["operation"])
	assert.Equal(t, "warning", logEntry["level"])
}
