// Package main provides the librunner command line interface.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geekrunners/librunner/distance"
	"github.com/geekrunners/librunner/duration"
	"github.com/geekrunners/librunner/internal/config"
	applogger "github.com/geekrunners/librunner/internal/logger"
	"github.com/geekrunners/librunner/running"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile   string
	systemName   string
	raceDistance int64
	raceTime     string
	strategy     string
	degreeSecs   int
	asJSON       bool
	weight       float64
	height       float64
	age          int

	cfg        *config.Config
	logger     *logrus.Logger
	raceLogger *applogger.RaceLogger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVarP(&systemName, "system", "s", "", "Unit system: metric or imperial")
	rootCmd.PersistentFlags().Int64VarP(&raceDistance, "distance", "d", 0, "Race distance in meters (metric) or yards (imperial)")

	for _, cmd := range []*cobra.Command{paceCmd, speedCmd, splitsCmd, reportCmd} {
		cmd.Flags().StringVarP(&raceTime, "time", "t", "", "Race duration as HH:MM:SS")
		_ = cmd.MarkFlagRequired("time")
	}
	splitsCmd.Flags().StringVar(&strategy, "strategy", "even", "Split strategy: even, negative or positive")
	splitsCmd.Flags().IntVar(&degreeSecs, "degree", -1, "Pace variation in seconds (defaults from config)")
	reportCmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	bmiCmd.Flags().Float64VarP(&weight, "weight", "w", 0, "Runner weight (kg or lbs)")
	bmiCmd.Flags().Float64Var(&height, "height", 0, "Runner height (m or in)")
	bmiCmd.Flags().IntVarP(&age, "age", "a", 0, "Runner age in years")
	_ = bmiCmd.MarkFlagRequired("weight")
	_ = bmiCmd.MarkFlagRequired("height")
}

var rootCmd = &cobra.Command{
	Use:     "librunner",
	Short:   "Running race pace and speed calculator",
	Long:    `Compute average pace, speed and split plans for running races in metric or imperial units.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		setupLogging()
		return nil
	},
}

var paceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Compute the average pace per km or mile",
	RunE: func(cmd *cobra.Command, args []string) error {
		race, run, err := buildRaceAndRunning()
		if err != nil {
			return err
		}
		pace, err := run.AveragePace(race)
		if err != nil {
			raceLogger.LogComputationRejected("average_pace", err)
			return err
		}
		raceLogger.LogPace(race, run, pace)
		fmt.Printf("%s/%s\n", duration.FormatPace(pace), race.System().SplitUnit())
		return nil
	},
}

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Compute the average speed in km/h or mph",
	RunE: func(cmd *cobra.Command, args []string) error {
		race, run, err := buildRaceAndRunning()
		if err != nil {
			return err
		}
		speed, err := run.Speed(race)
		if err != nil {
			raceLogger.LogComputationRejected("speed", err)
			return err
		}
		display := race.System().DisplaySpeed(speed)
		raceLogger.LogSpeed(race, run, display)
		fmt.Printf("%.2f %s\n", display, race.System().SpeedUnit())
		return nil
	},
}

var splitsCmd = &cobra.Command{
	Use:   "splits",
	Short: "Plan the race splits",
	RunE: func(cmd *cobra.Command, args []string) error {
		race, run, err := buildRaceAndRunning()
		if err != nil {
			return err
		}
		if degreeSecs < 0 {
			degreeSecs = cfg.Splits.DegreeSeconds
		}
		degree := time.Duration(degreeSecs) * time.Second

		var splits []time.Duration
		switch strategy {
		case "even":
			splits, err = run.Splits(race)
		case "negative":
			splits, err = run.NegativeSplits(race, degree)
		case "positive":
			splits, err = run.PositiveSplits(race, degree)
		default:
			return fmt.Errorf("unknown split strategy %q", strategy)
		}
		if err != nil {
			raceLogger.LogComputationRejected("splits", err)
			return err
		}

		raceLogger.LogSplitPlan(race, strategy, degree, len(splits))
		for i, split := range splits {
			fmt.Printf("%s %d: %s/%s\n", race.System().SplitUnit(), i+1, duration.FormatPace(split), race.System().SplitUnit())
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize pace, speed and splits for a race",
	RunE: func(cmd *cobra.Command, args []string) error {
		race, run, err := buildRaceAndRunning()
		if err != nil {
			return err
		}
		report, err := running.NewReport(race, run)
		if err != nil {
			raceLogger.LogComputationRejected("report", err)
			return err
		}
		if asJSON {
			fmt.Println(report.ToJSON())
			return nil
		}
		fmt.Printf("Race:     %.3f %s (%s)\n", report.Distance, report.Unit, report.System)
		fmt.Printf("Duration: %s\n", report.Duration)
		fmt.Printf("Pace:     %s/%s\n", report.AveragePace, report.Unit)
		fmt.Printf("Speed:    %.2f %s\n", report.Speed, report.SpeedUnit)
		fmt.Printf("Splits:   %d\n", report.Splits)
		return nil
	},
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Compute a runner's body mass index",
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := resolveSystem()
		if err != nil {
			return err
		}
		runner, err := running.NewRunner(system, weight, height, age)
		if err != nil {
			return err
		}
		fmt.Printf("BMI: %.1f\n", runner.BMI())
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <km-value>",
	Short: "Convert a distance in kilometers to miles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var km float64
		if _, err := fmt.Sscanf(args[0], "%f", &km); err != nil {
			return fmt.Errorf("invalid distance %q: %w", args[0], err)
		}
		fmt.Printf("%.3f km = %.3f miles\n", km, distance.KmToMile(km))
		return nil
	},
}

func main() {
	rootCmd.AddCommand(paceCmd, speedCmd, splitsCmd, reportCmd, bmiCmd, convertCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupLogging() {
	logger = applogger.NewLogger(cfg.App.LogLevel)
	raceLogger = applogger.NewRaceLogger(logger)
}

func resolveSystem() (running.System, error) {
	name := systemName
	if name == "" {
		name = cfg.Race.UnitSystem
	}
	system, err := running.ParseSystem(name)
	if err != nil {
		return system, fmt.Errorf("%w: %q", err, name)
	}
	return system, nil
}

func buildRaceAndRunning() (running.Race, running.Running, error) {
	system, err := resolveSystem()
	if err != nil {
		return running.Race{}, running.Running{}, err
	}

	dist := raceDistance
	if dist == 0 {
		dist = cfg.Race.DefaultDistance
	}
	race, err := running.NewRace(system, dist)
	if err != nil {
		return running.Race{}, running.Running{}, fmt.Errorf("invalid race distance %d: %w", dist, err)
	}

	elapsed, err := duration.Parse(raceTime)
	if err != nil {
		return running.Race{}, running.Running{}, err
	}
	run, err := running.NewRunning(elapsed)
	if err != nil {
		return running.Race{}, running.Running{}, err
	}
	return race, run, nil
}
