package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"focusboard/internal/logger"
	"focusboard/internal/platform"
)

const appName = "FocusBoard"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	verbose    bool
	quiet      bool
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "focusboard",
		Short:         "Desktop focus board with a countdown timer, to-do list and ambient sound",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "disable all logging")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "settings file (default <config dir>/FocusBoard/settings.yaml)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	return cmd
}

func run(opts *options) error {
	log := logger.New(logger.LevelFromFlags(opts.verbose, opts.quiet), os.Stderr)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info("%s is already running; asked it to come to the front", appName)
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	return newApp(opts, log, guard).run()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "focusboard: %v\n", err)
		os.Exit(1)
	}
}
