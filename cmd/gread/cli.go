package main

import (
	"context"
	"io"

	"github.com/leovikii/gread"
	"github.com/leovikii/gread/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Prefs    gread.PreferenceService
	Stats    gread.GalleryStatService
	Adapter  gread.Adapter
	Fetcher  gread.Fetcher
	Resolver gread.Resolver
	Limiter  gread.HostLimiter
	Warmer   gread.Warmer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Read   ReadCmd   `cmd:"" help:"Aggregate a gallery and print resolved image URLs"`
	Info   InfoCmd   `cmd:"" help:"Show preferences and cached gallery stats"`
	Toggle ToggleCmd `cmd:"" help:"Flip a persisted preference"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	URL         string `arg:"" help:"Gallery page URL"`
	Pages       int    `short:"n" default:"0" help:"Page limit (0 = all pages)"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent resolution limit"`
	Prefetch    bool   `short:"P" help:"Warm the next page's items ahead of each advance"`
	Out         string `short:"o" help:"Directory to export the resolved URL manifest to"`
	Browser     bool   `short:"b" help:"Fetch pages through a headless browser"`
	Verbose     bool   `short:"v" help:"Log fetches and resolutions"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct {
	URL string `arg:"" optional:"" help:"Gallery URL to look up cached stats for"`
}

// ToggleCmd is the "toggle" subcommand group.
type ToggleCmd struct {
	AutoAdvance ToggleAutoAdvanceCmd `cmd:"" name:"auto-advance" help:"Flip scroll-triggered page advancing"`
	Control     ToggleControlCmd     `cmd:"" help:"Flip the floating control's visibility"`
	Mode        ToggleModeCmd        `cmd:"" help:"Switch between continuous and single reading mode"`
	AutoEnter   ToggleAutoEnterCmd   `cmd:"" name:"auto-enter" help:"Flip opening the single-item viewer on load"`
	AutoPlay    ToggleAutoPlayCmd    `cmd:"" name:"auto-play" help:"Flip the viewer's auto-play"`
	Interval    SetIntervalCmd       `cmd:"" help:"Set the auto-play interval in milliseconds"`
}

// ToggleAutoAdvanceCmd is the "toggle auto-advance" subcommand.
type ToggleAutoAdvanceCmd struct{}

// ToggleControlCmd is the "toggle control" subcommand.
type ToggleControlCmd struct{}

// ToggleModeCmd is the "toggle mode" subcommand.
type ToggleModeCmd struct{}

// ToggleAutoEnterCmd is the "toggle auto-enter" subcommand.
type ToggleAutoEnterCmd struct{}

// ToggleAutoPlayCmd is the "toggle auto-play" subcommand.
type ToggleAutoPlayCmd struct{}

// SetIntervalCmd is the "toggle interval" subcommand.
type SetIntervalCmd struct {
	Millis int `arg:"" help:"Interval between auto-play steps in milliseconds"`
}
