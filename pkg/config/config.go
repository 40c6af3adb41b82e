package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// Currency is the ISO code stamped into exports. The bank only does
	// one.
	Currency string `mapstructure:"currency"`
	// BankID is the OFX BANKID token for checking statements.
	BankID string `mapstructure:"bank_id"`
	// BalancesFile is where the overview-page balance snapshots live.
	BalancesFile string `mapstructure:"balances_file"`
	// Addr is the listen address of the HTTP server.
	Addr string `mapstructure:"addr"`
}

// Build loads configuration in increasing precedence: defaults, config
// file, AIB2OFX_* environment, command-line flags.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("currency", "EUR")
	v.SetDefault("bank_id", "AIB")
	v.SetDefault("balances_file", "~/.config/aib2ofx/balances.yaml")
	v.SetDefault("addr", ":8080")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("aib2ofx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/aib2ofx")
	}

	v.SetEnvPrefix("AIB2OFX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// Running without a config file is the normal case.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
