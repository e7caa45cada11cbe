package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SweepConfig holds configuration for a parameter sweep. The axis values
// stay as strings here; the sweep command parses them.
type SweepConfig struct {
	Factors     []string
	Caps        []string
	Imbalances  []string
	BaseSpreads []string
	BatchSize   int
	PGDSN       string
	Out         string
	StateFile   string
	LogLevel    string
}

// LoadSweep merges config file, environment variables, and flags into
// SweepConfig.
func LoadSweep(cfgFile string, flags *pflag.FlagSet) (SweepConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("batch-size", 1000)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return SweepConfig{}, err
	}

	cfg := SweepConfig{
		Factors:     getStringSlice(v, "factor"),
		Caps:        getStringSlice(v, "cap"),
		Imbalances:  getStringSlice(v, "imbalance"),
		BaseSpreads: getStringSlice(v, "base-spread"),
		BatchSize:   v.GetInt("batch-size"),
		PGDSN:       v.GetString("pg-dsn"),
		Out:         v.GetString("out"),
		StateFile:   v.GetString("state-file"),
		LogLevel:    v.GetString("log-level"),
	}

	return cfg, nil
}
