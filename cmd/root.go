// Package cmd provides the root command and CLI setup for bloch.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mouse-blink/bloch/internal/adapter"
	"github.com/mouse-blink/bloch/internal/controller"
	"github.com/mouse-blink/bloch/internal/domain"
	"github.com/spf13/cobra"
)

var ui controller.UI
var configLoader adapter.ConfigLoader
var newEngine = domain.NewEngine
var useTTY bool

// Session state prepared by the persistent pre-run hook.
var cfg adapter.Config
var logger *log.Logger
var logCloser io.Closer
var source domain.RandomSource

func init() {
	useTTY = adapter.IsTTY(os.Stdout)
	ui = controller.NewUI(rootCmd, useTTY)
	configLoader = adapter.NewConfigLoader()
}

var configFlag string
var seedFlag uint64
var fpsFlag int
var logLevelFlag string
var logFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bloch",
		Short: "Interactive single-qubit Bloch sphere",
		Long: `Bloch renders a single qubit on a Bloch sphere in the terminal and lets you
apply quantum gates, prepare custom or random states and measure them.
Every change animates as a smooth transition between the two states.

In a terminal it opens the interactive viewer:
  x y z h s t   apply a gate
  0 / r         reset to |0⟩
  c             enter a custom state
  n             random state
  m             measure
  arrows, drag  orbit the camera
  q             quit

When stdin/stdout are not a terminal it reads one request per line instead:
  X Y Z H S T, reset, custom aRe aIm bRe bIm, random, measure, state, quit`,
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		RunE: func(_ *cobra.Command, _ []string) error {
			return ui.Interactive(buildEngine(),
				controller.WithFPS(cfg.FPS),
				controller.WithCamera(cfg.Camera.Yaw, cfg.Camera.Pitch),
			)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "seed for measurements and random states (0 picks one)")
	cmd.PersistentFlags().IntVar(&fpsFlag, "fps", adapter.DefaultFPS, "frames per second of the viewer animation")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "append logs to this file instead of stderr")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the config file, applies flag overrides and builds the logger
// and random source shared by every command.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := configLoader.Load(configFlag)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		loaded.Seed = seedFlag
	}

	if flags.Changed("fps") {
		loaded.FPS = fpsFlag
	}

	if flags.Changed("log-level") {
		loaded.Log.Level = logLevelFlag
	}

	if flags.Changed("log-file") {
		loaded.Log.File = logFileFlag
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	// The viewer owns the terminal, so without a log file it stays silent.
	fallback := cmd.ErrOrStderr()
	if useTTY && !cmd.HasParent() {
		fallback = io.Discard
	}

	logger, logCloser, err = adapter.NewLogger(loaded.Log, fallback)
	if err != nil {
		return err
	}

	cfg = loaded
	source = domain.NewRandomSource(cfg.Seed)

	logger.Debug("configuration loaded", "config", configFlag, "seed", cfg.Seed, "fps", cfg.FPS)

	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}

	if err := logCloser.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

func buildEngine(options ...domain.Option) domain.Engine {
	base := []domain.Option{
		domain.WithRandomSource(source),
		domain.WithLogger(logger),
	}

	return newEngine(append(base, options...)...)
}
