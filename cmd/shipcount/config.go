package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// runConfig holds every CLI-tunable knob, bound simultaneously to pflag
// (command-line) and viper (config file / environment), with flags
// taking precedence.
type runConfig struct {
	Width, Height int
	Ships         []int
	ReturnType    string
	Symmetry      bool
	Parallel      bool
	Workers       int
	Timeout       time.Duration
	BitLookup     bool
	Verbose       bool
	MetricsAddr   string
	ConfigFile    string

	v *viper.Viper
}

func newRunConfig() *runConfig {
	return &runConfig{
		Width:      10,
		Height:     10,
		Ships:      []int{6, 4, 4, 3, 3, 2, 2},
		ReturnType: "count",
		Symmetry:   true,
		Parallel:   true,
		v:          viper.New(),
	}
}

func (c *runConfig) bindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&c.Width, "width", c.Width, "board width in cells")
	flags.IntVar(&c.Height, "height", c.Height, "board height in cells")
	flags.StringSlice("ships", shipsToStrings(c.Ships), "comma-separated ship sizes")
	flags.StringVar(&c.ReturnType, "return", c.ReturnType, "count|combined_masks|indices")
	flags.BoolVar(&c.Symmetry, "symmetry", c.Symmetry, "collapse identical-size ship groups")
	flags.BoolVar(&c.Parallel, "parallel", c.Parallel, "fan the search out across workers")
	flags.IntVar(&c.Workers, "workers", c.Workers, "worker count (0 = GOMAXPROCS)")
	flags.DurationVar(&c.Timeout, "timeout", c.Timeout, "search deadline (0 = none)")
	flags.BoolVar(&c.BitLookup, "bit-lookup", c.BitLookup, "enable the per-bit candidate lookup accelerator")
	flags.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "enable development-mode logging")
	flags.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "if set, serve Prometheus metrics on this address")
	flags.StringVar(&c.ConfigFile, "config", c.ConfigFile, "path to a shipcount config file (yaml/json/toml)")

	cobra.OnInitialize(func() { c.loadFromViper(flags) })
}

// loadFromViper merges a config file (if given) and SHIPCOUNT_-prefixed
// environment variables, then re-reads any flag viper now knows a
// value for that the user did not set explicitly on the command line.
func (c *runConfig) loadFromViper(flags *pflag.FlagSet) {
	c.v.SetEnvPrefix("shipcount")
	c.v.AutomaticEnv()
	if err := c.v.BindPFlags(flags); err != nil {
		return
	}
	if c.ConfigFile != "" {
		c.v.SetConfigFile(c.ConfigFile)
		_ = c.v.ReadInConfig()
	}

	if raw := c.v.GetStringSlice("ships"); len(raw) > 0 {
		if ships, err := parseShips(raw); err == nil {
			c.Ships = ships
		}
	}
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name != "ships" && !f.Changed && c.v.IsSet(f.Name) {
			_ = f.Value.Set(c.v.GetString(f.Name))
		}
	})
}

func shipsToStrings(ships []int) []string {
	out := make([]string, len(ships))
	for i, s := range ships {
		out[i] = strconv.Itoa(s)
	}

	return out
}

func parseShips(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("shipcount: invalid ship size %q: %w", s, err)
		}
		out = append(out, n)
	}

	return out, nil
}
