package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the terminal session.
type Config struct {
	Import string
	Tick   time.Duration

	// MessageHold is how long transient status messages stay up. It has
	// no flag; tests shrink it to keep the suite fast.
	MessageHold time.Duration
}

// NewConfig returns a Config populated with the standard cadence.
func NewConfig() *Config {
	return &Config{
		Tick:        100 * time.Millisecond,
		MessageHold: 2 * time.Second,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Import, "import", c.Import, "snapshot file to load before the editor opens")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "delay between generations while running")
}
