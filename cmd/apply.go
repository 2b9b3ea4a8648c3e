package cmd

import (
	m "github.com/mouse-blink/bloch/internal/model"
	"github.com/spf13/cobra"
)

var applyCustomFlag string
var applyRandomFlag bool
var applyFramesFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [gates...]",
		Short: "Apply gates without the viewer and print the resulting state",
		Long: `Apply prepares a state, applies the given gates in order and prints the
state it settles into. Gates may be given as separate arguments or comma
separated, e.g. "bloch apply H S" or "bloch apply H,S".`,
		Example: `  bloch apply H
  bloch apply --custom 1,0,1,1 Z
  bloch apply --random --seed 42 --frames X`,
		RunE: func(_ *cobra.Command, args []string) error {
			gates, err := parseGates(args)
			if err != nil {
				return err
			}

			prep := preparation{custom: applyCustomFlag, random: applyRandomFlag, gates: gates}

			var displayErr error

			final, err := prep.run(buildEngine(), func(frame m.Frame) {
				if applyFramesFlag && frame.Animating() && displayErr == nil {
					displayErr = ui.DisplayFrame(frame)
				}
			})
			if err != nil {
				return err
			}

			if displayErr != nil {
				return displayErr
			}

			return ui.DisplayFrame(final)
		},
	}
	cmd.Flags().StringVar(&applyCustomFlag, "custom", "", "start from a custom state given as aRe,aIm,bRe,bIm")
	cmd.Flags().BoolVar(&applyRandomFlag, "random", false, "start from a random state")
	cmd.Flags().BoolVar(&applyFramesFlag, "frames", false, "print every animation frame")
	cmd.MarkFlagsMutuallyExclusive("custom", "random")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
