package cmd

import (
	"fmt"

	"github.com/mouse-blink/bloch/internal/domain"
	"github.com/spf13/cobra"
)

var measureCustomFlag string
var measureRandomFlag bool
var measureShotsFlag int
var measureParallelFlag int

// measureCmd represents the measure command.
var measureCmd = newMeasureCmd()

func newMeasureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure [gates...]",
		Short: "Prepare a state and measure it",
		Long: `Measure prepares a state the way apply does and measures it.

With a single shot the qubit collapses and the outcome is printed together
with the state it collapsed to. With more shots the prepared state is measured
repeatedly and the observed counts are compared with the Born probabilities.`,
		Example: `  bloch measure H
  bloch measure --shots 1000 --seed 7 H T
  bloch measure --shots 1000000 --parallel 4 H`,
		RunE: func(_ *cobra.Command, args []string) error {
			if measureShotsFlag < 1 {
				return fmt.Errorf("shots must be at least 1, got %d", measureShotsFlag)
			}

			gates, err := parseGates(args)
			if err != nil {
				return err
			}

			engine := buildEngine()
			prep := preparation{custom: measureCustomFlag, random: measureRandomFlag, gates: gates}

			if _, err := prep.run(engine, nil); err != nil {
				return err
			}

			if measureShotsFlag > 1 {
				summary := domain.MeasureShotsParallel(source, engine.State(), measureShotsFlag, measureParallelFlag)
				logger.Info("shots measured", "shots", summary.Shots, "zeros", summary.Counts[0], "ones", summary.Counts[1])

				return ui.DisplayShots(summary)
			}

			measurement, _ := engine.Measure()
			if err := ui.DisplayMeasurement(measurement); err != nil {
				return err
			}

			return ui.DisplayFrame(domain.Settle(engine, nil))
		},
	}
	cmd.Flags().StringVar(&measureCustomFlag, "custom", "", "start from a custom state given as aRe,aIm,bRe,bIm")
	cmd.Flags().BoolVar(&measureRandomFlag, "random", false, "start from a random state")
	cmd.Flags().IntVarP(&measureShotsFlag, "shots", "n", 1, "number of measurements")
	cmd.Flags().IntVarP(&measureParallelFlag, "parallel", "p", 1, "number of parallel workers for repeated measurements")
	cmd.MarkFlagsMutuallyExclusive("custom", "random")

	return cmd
}

func init() {
	rootCmd.AddCommand(measureCmd)
}
