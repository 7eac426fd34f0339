package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/punchtui/punch/internal/app"
)

func main() {
	var (
		configPath  string
		prefsPath   string
		pollSeconds int
	)

	rootCmd := &cobra.Command{
		Use:   "punch",
		Short: "Terminal timeclock for the workforce backend",
		Long: "punch is a terminal companion to the workforce timeclock: it shows " +
			"live task and day clocks reconciled from the backend's time logs, " +
			"starts and stops timers, and can mirror the clocks onto a second " +
			"terminal.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			opts := app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
			}
			if pollSeconds > 0 {
				opts.PollEvery = pollSeconds
			}
			return app.Run(ctx, opts)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "override config path (optional)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
	rootCmd.Flags().IntVar(&pollSeconds, "poll", 0, "snapshot refresh interval in seconds (optional)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "punch: %v\n", err)
		os.Exit(1)
	}
}
