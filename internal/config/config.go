// Package config loads simulation driver defaults via viper, from
// environment variables and an optional config file.
package config

import "github.com/spf13/viper"

// DriverDefaults holds driver settings loaded by Load. Nothing in this
// module applies them automatically: simulation.NewDriver takes its
// iteration count, worker count and seed only from its own arguments and
// options.
type DriverDefaults struct {
	Iterations       int      `mapstructure:"iterations"`
	Workers          int      `mapstructure:"workers"`
	Seed             int64    `mapstructure:"seed"`
	LogLevel         string   `mapstructure:"log_level"`
	ConfidenceLevels []float64 `mapstructure:"confidence_levels"`
}

// DefaultDriverDefaults returns the baseline configuration used when no
// environment variables or config file override it.
func DefaultDriverDefaults() DriverDefaults {
	return DriverDefaults{
		Iterations:       10000,
		Workers:          1,
		Seed:             0,
		LogLevel:         "info",
		ConfidenceLevels: []float64{0.90, 0.95, 0.99},
	}
}

// Load reads driver defaults from environment variables prefixed MC_
// (e.g. MC_ITERATIONS, MC_WORKERS, MC_SEED, MC_LOG_LEVEL) and, if present,
// an optional configFile, layered over DefaultDriverDefaults.
func Load(configFile string) (DriverDefaults, error) {
	v := viper.New()
	v.SetEnvPrefix("MC")
	v.AutomaticEnv()

	defaults := DefaultDriverDefaults()
	v.SetDefault("iterations", defaults.Iterations)
	v.SetDefault("workers", defaults.Workers)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("confidence_levels", defaults.ConfidenceLevels)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return DriverDefaults{}, err
		}
	}

	var out DriverDefaults
	if err := v.Unmarshal(&out); err != nil {
		return DriverDefaults{}, err
	}
	return out, nil
}
