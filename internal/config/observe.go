package config

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ObserveConfig holds configuration for the on-chain observe command.
type ObserveConfig struct {
	RPCURL       string
	Pool         string
	Token0       string
	Token1       string
	Decimals0    int
	Decimals1    int
	Block        uint64
	Factor       int
	Cap          float64
	BaseSpread   float64
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

// LoadObserve merges config file, environment variables, and flags into
// ObserveConfig.
func LoadObserve(cfgFile string, flags *pflag.FlagSet) (ObserveConfig, error) {
	v, err := newViper(cfgFile, flags, func(v *viper.Viper) {
		v.SetDefault("decimals0", -1)
		v.SetDefault("decimals1", -1)
		v.SetDefault("cap", 100.0)
		v.SetDefault("base-spread", 100.0)
		v.SetDefault("max-retries", 5)
		v.SetDefault("retry-backoff", 500*time.Millisecond)
		v.SetDefault("log-level", "info")
	})
	if err != nil {
		return ObserveConfig{}, err
	}

	cfg := ObserveConfig{
		RPCURL:       v.GetString("rpc"),
		Pool:         v.GetString("pool"),
		Token0:       v.GetString("token0"),
		Token1:       v.GetString("token1"),
		Decimals0:    v.GetInt("decimals0"),
		Decimals1:    v.GetInt("decimals1"),
		Block:        v.GetUint64("block"),
		Factor:       v.GetInt("factor"),
		Cap:          v.GetFloat64("cap"),
		BaseSpread:   v.GetFloat64("base-spread"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}

	return cfg, nil
}
