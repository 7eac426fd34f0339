package app

import (
	"context"
	"fmt"
	"time"

	"github.com/punchtui/punch/internal/config"
	"github.com/punchtui/punch/internal/mirror"
	"github.com/punchtui/punch/internal/prefs"
	"github.com/punchtui/punch/internal/session"
	"github.com/punchtui/punch/internal/state"
	"github.com/punchtui/punch/internal/timeclock"
	"github.com/punchtui/punch/internal/ui"
)

// Options configure the punch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/punch/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the punch TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := timeclock.NewClient(cfg.APIBase, cfg.Token)
	if err != nil {
		return fmt.Errorf("init timeclock client: %w", err)
	}

	store := &state.Store{}

	interval := time.Duration(cfg.PollSeconds) * time.Second
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}

	// Start background poller
	StartPoller(ctx, store, client, interval)

	sess := session.New()
	if userPrefs.LastTask != "" {
		sess.SelectTask(userPrefs.LastTask, time.Now())
	}

	mir := mirror.New(mirror.TTYOpen(cfg.MirrorTTY))
	defer mir.Close()

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Session:   sess,
		Mirror:    mir,
		Config:    &cfg,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
