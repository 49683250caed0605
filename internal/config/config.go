package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type ResolverConfig struct {
	// MaxAliasHops bounds a single resolution's walk through alias and
	// glob edges; cycles degrade to lookup misses at this depth.
	MaxAliasHops int `mapstructure:"max_alias_hops"`
	// PublicRoots are namespaces whose items are always documented.
	PublicRoots []string `mapstructure:"public_roots"`
}

type OutputConfig struct {
	IndexFile  string `mapstructure:"index_file"`
	PageSuffix string `mapstructure:"page_suffix"`
}

type IndexConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type Config struct {
	Resolver ResolverConfig `mapstructure:"resolver"`
	Output   OutputConfig   `mapstructure:"output"`
	Index    IndexConfig    `mapstructure:"index"`
}

// cacheBase returns the base cache directory for aludoc.
// Checks XDG_CACHE_HOME, then ~/.cache, then /tmp/aludoc as fallback.
func cacheBase() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "aludoc")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", "aludoc")
	}
	return filepath.Join(os.TempDir(), "aludoc")
}

// DefaultDBPath returns the default location of the symbol index database.
func DefaultDBPath() string {
	return filepath.Join(cacheBase(), "symbols.db")
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "aludoc"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "aludoc"))
	}

	viper.SetDefault("resolver.max_alias_hops", 64)
	viper.SetDefault("resolver.public_roots", []string{"std::builtins", "std::intrinsics"})
	viper.SetDefault("output.index_file", "index.html")
	viper.SetDefault("output.page_suffix", ".html")
	viper.SetDefault("index.db_path", DefaultDBPath())

	viper.SetEnvPrefix("ALUDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
