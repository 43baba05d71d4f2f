package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Forum struct {
		BaseURL              string
		MaxCategories        int
		MaxTopicsPerCategory int
		MaxTopicDetails      int
		RateLimitSecs        int
	}
	Chain struct {
		RPCEndpoint   string
		BridgeScript  string
		SubscanURL    string
		SubscanAPIKey string
	}
	Database struct {
		Url   string
		Token string
	}
	Newsletter struct {
		ResendAPIKey string
		FromEmail    string
	}
	Digest struct {
		OutputDir string
		Schedule  string
	}
}

func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set defaults
	setDefaults(v)

	// Read config file (optional - will use env vars if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	cfg := &Config{}

	// Forum config
	cfg.Forum.BaseURL = v.GetString("forum.base_url")
	cfg.Forum.MaxCategories = v.GetInt("forum.max_categories")
	cfg.Forum.MaxTopicsPerCategory = v.GetInt("forum.max_topics_per_category")
	cfg.Forum.MaxTopicDetails = v.GetInt("forum.max_topic_details")
	cfg.Forum.RateLimitSecs = v.GetInt("forum.rate_limit_secs")

	// Chain config
	cfg.Chain.RPCEndpoint = v.GetString("chain.rpc_endpoint")
	cfg.Chain.BridgeScript = v.GetString("chain.bridge_script")
	cfg.Chain.SubscanURL = v.GetString("chain.subscan_url")
	cfg.Chain.SubscanAPIKey = v.GetString("chain.subscan_api_key")

	// Database config
	cfg.Database.Url = v.GetString("database.url")
	cfg.Database.Token = v.GetString("database.token")

	// Newsletter config
	cfg.Newsletter.ResendAPIKey = v.GetString("newsletter.resend_api_key")
	cfg.Newsletter.FromEmail = v.GetString("newsletter.from_email")

	// Digest config
	cfg.Digest.OutputDir = v.GetString("digest.output_dir")
	cfg.Digest.Schedule = v.GetString("digest.schedule")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Forum defaults
	v.SetDefault("forum.base_url", "https://forum.polkadot.network")
	v.SetDefault("forum.max_categories", 15)
	v.SetDefault("forum.max_topics_per_category", 20)
	v.SetDefault("forum.max_topic_details", 100)
	v.SetDefault("forum.rate_limit_secs", 1)

	// Chain defaults
	v.SetDefault("chain.rpc_endpoint", "wss://rpc.polkadot.io")
	v.SetDefault("chain.bridge_script", "js_scripts/referenda.js")
	v.SetDefault("chain.subscan_url", "https://polkadot.api.subscan.io/api/scan")

	// Newsletter defaults
	v.SetDefault("newsletter.from_email", "Polkadot Newsletter <newsletter@polkadot-community.org>")

	// Digest defaults
	v.SetDefault("digest.output_dir", "digest_output")
	v.SetDefault("digest.schedule", "0 8 * * 1")
}

func validate(cfg *Config) error {
	if cfg.Forum.BaseURL == "" {
		return fmt.Errorf("forum.base_url is required")
	}
	if cfg.Chain.RPCEndpoint == "" {
		return fmt.Errorf("chain.rpc_endpoint is required")
	}
	if cfg.Database.Url == "" {
		return fmt.Errorf("database.url is required")
	}
	return nil
}
