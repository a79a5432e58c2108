package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// runConfig is the fully-resolved set of knobs one invocation of `labelrank
// run` needs, after viper has merged flags, environment variables
// (LABELRANK_*), and an optional config file. Tags match the flag names
// registered in run.go verbatim (dashes, not underscores) since those are
// the keys BindPFlags registers into viper.
type runConfig struct {
	File              string  `mapstructure:"file"`
	Repeat            int     `mapstructure:"repeat"`
	MaxIterations     int     `mapstructure:"max-iterations"`
	Inflation         float64 `mapstructure:"inflation"`
	ConditionalUpdate float64 `mapstructure:"conditional-update"`
	Schedule          string  `mapstructure:"schedule"`
	Workers           int     `mapstructure:"workers"`
	ChunkSize         int     `mapstructure:"chunk-size"`
	SelfLoopWeight    float64 `mapstructure:"self-loop-weight"`
}

func loadConfig(v *viper.Viper) (runConfig, error) {
	var cfg runConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return runConfig{}, fmt.Errorf("cmd: %w", err)
	}
	if cfg.File == "" {
		return runConfig{}, fmt.Errorf("cmd: --file is required")
	}

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("labelrank")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfgFile := os.Getenv("LABELRANK_CONFIG"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		_ = v.ReadInConfig() // a missing optional config file is not fatal
	}

	return v
}
