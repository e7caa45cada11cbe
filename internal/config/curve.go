package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// CurveConfig holds configuration for curve sampling.
type CurveConfig struct {
	Factor   int
	Cap      float64
	Samples  int
	Out      string
	LogLevel string
}

// LoadCurve merges config file, environment variables, and flags into
// CurveConfig.
func LoadCurve(cfgFile string, flags *pflag.FlagSet) (CurveConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("cap", 100.0)
		v.SetDefault("samples", 100)
		v.SetDefault("out", "./data/curve.jsonl")
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return CurveConfig{}, err
	}

	cfg := CurveConfig{
		Factor:   v.GetInt("factor"),
		Cap:      v.GetFloat64("cap"),
		Samples:  v.GetInt("samples"),
		Out:      v.GetString("out"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}
