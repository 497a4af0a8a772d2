// Package config holds the options shared by the racetimeout commands and the
// plumbing that fills them from flags, RACETIMEOUT_* environment variables and
// an optional config file.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

const (
	DefaultDeadline = 2 * time.Second
	DefaultWork     = 5 * time.Second
	DefaultMessage  = "Finally finished"
)

// Options holds all CLI configuration.
type Options struct {
	Deadline time.Duration
	Work     time.Duration
	Message  string
	Runs     int
	LogLevel string
	Color    string
}

func NewOptions() *Options {
	return &Options{
		Deadline: DefaultDeadline,
		Work:     DefaultWork,
		Message:  DefaultMessage,
		Runs:     1,
		LogLevel: "info",
		Color:    "auto",
	}
}

// AddGlobalFlags registers the flags every subcommand understands.
func (o *Options) AddGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log level: debug, info, warn, or error")
	fs.StringVar(&o.Color, "color", o.Color, "Colorize output: auto, always, or never")
	fs.DurationVar(&o.Deadline, "deadline", o.Deadline, "Time budget for the raced operation")
}

// AddRunFlags registers the flags of the run command.
func (o *Options) AddRunFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.Work, "work", o.Work, "How long the simulated operation takes")
	fs.StringVar(&o.Message, "message", o.Message, "Value produced by the operation when it finishes")
	fs.IntVar(&o.Runs, "runs", o.Runs, "Number of independent races to run concurrently")
}

func (o *Options) Validate() error {
	if o.Deadline < 0 {
		return fmt.Errorf("--deadline must not be negative (got %s)", o.Deadline)
	}
	if o.Work < 0 {
		return fmt.Errorf("--work must not be negative (got %s)", o.Work)
	}
	if o.Runs < 1 {
		return fmt.Errorf("--runs must be at least 1 (got %d)", o.Runs)
	}
	switch strings.ToLower(o.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode %q (expected auto, always, or never)", o.Color)
	}
	return nil
}

// ApplyColor sets the global color mode of github.com/fatih/color.
func (o *Options) ApplyColor() {
	switch strings.ToLower(o.Color) {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}
