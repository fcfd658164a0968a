package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Class string
	Scale int
	TPS   int
	Seed  int64
	Storm bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Class: "Sloop", Scale: 8, TPS: 60, Seed: 1337}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Class, "class", c.Class, "ship class to sail")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for wind randomness")
	fs.BoolVar(&c.Storm, "storm", c.Storm, "start with storm mode active")
}
