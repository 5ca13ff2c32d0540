package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/thrasher-corp/bitget-legacy/log"
)

var validate = validator.New()

// Default returns a config populated with default values
func Default() *Config {
	return &Config{
		Exchange: Exchange{
			Name:          DefaultExchange,
			HTTPTimeout:   defaultHTTPTimeout,
			HTTPUserAgent: defaultUserAgent,
			DefaultType:   DefaultType,
			RateLimit: RateLimit{
				Interval: defaultRateLimitInterval,
				Actions:  defaultRateLimitActions,
			},
			Retry: Retry{
				MaxAttempts: defaultRetryAttempts,
				Backoff:     defaultRetryBackoff,
			},
		},
		Logging: log.GenDefaultSettings(),
	}
}

// Load reads the config file at path, if supplied, applying environment
// overrides prefixed with BITGET_. A .env file in the working directory or
// alongside the config file is loaded first when present.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(path); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("fatal error opening %s file: %w", path, err)
		}
		log.Debugf(log.ConfigMgr, "Using config file %s", v.ConfigFileUsed())
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("fatal error decoding config: %w", err)
	}

	if err := c.CheckConfig(); err != nil {
		return nil, fmt.Errorf("fatal error checking config values: %w", err)
	}
	return c, nil
}

func loadDotEnv(path string) error {
	candidates := []string{".env"}
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			candidates = append(candidates, filepath.Join(dir, ".env"))
		}
	}
	for _, f := range candidates {
		err := godotenv.Load(f)
		if err == nil {
			log.Debugf(log.ConfigMgr, "Loaded environment file %s", f)
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("loading %s: %w", f, err)
	}
	return nil
}

// setDefaults registers every key with viper so AutomaticEnv can override
// values that are absent from the config file
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("exchange.name", d.Exchange.Name)
	v.SetDefault("exchange.verbose", false)
	v.SetDefault("exchange.http_timeout", d.Exchange.HTTPTimeout)
	v.SetDefault("exchange.http_user_agent", d.Exchange.HTTPUserAgent)
	v.SetDefault("exchange.default_type", d.Exchange.DefaultType)
	v.SetDefault("exchange.account_id", "")
	v.SetDefault("exchange.endpoints.data", "")
	v.SetDefault("exchange.endpoints.api", "")
	v.SetDefault("exchange.endpoints.swap", "")
	v.SetDefault("exchange.rate_limit.interval", d.Exchange.RateLimit.Interval)
	v.SetDefault("exchange.rate_limit.actions", d.Exchange.RateLimit.Actions)
	v.SetDefault("exchange.retry.max_attempts", d.Exchange.Retry.MaxAttempts)
	v.SetDefault("exchange.retry.backoff", d.Exchange.Retry.Backoff)
	v.SetDefault("credentials.key", "")
	v.SetDefault("credentials.secret", "")
	v.SetDefault("credentials.client_id", "")
	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.json", d.Logging.JSON)
	v.SetDefault("logging.filename", "")
}

// CheckConfig fills in unset values and validates the config
func (c *Config) CheckConfig() error {
	if c == nil {
		return errConfigIsNil
	}
	if c.Exchange.Name == "" {
		c.Exchange.Name = DefaultExchange
	}
	if c.Exchange.HTTPTimeout <= 0 {
		log.Warnf(log.ConfigMgr,
			"Exchange %s HTTP Timeout value not set, defaulting to %v.",
			c.Exchange.Name,
			defaultHTTPTimeout)
		c.Exchange.HTTPTimeout = defaultHTTPTimeout
	}
	if c.Exchange.DefaultType == "" {
		c.Exchange.DefaultType = DefaultType
	}
	c.Exchange.DefaultType = strings.ToLower(c.Exchange.DefaultType)
	if c.Logging.Level == "" && c.Logging.Output == "" {
		c.Logging = log.GenDefaultSettings()
	}
	if c.Credentials.Key != "" && !c.AuthenticatedSupport() {
		log.Warnf(log.ConfigMgr, WarningAuthAPIDefaultOrEmptyValues, c.Exchange.Name)
	}
	return c.Validate()
}

// Validate checks the config against its validation tags
func (c *Config) Validate() error {
	if c == nil {
		return errConfigIsNil
	}
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for i := range verrs {
				if verrs[i].Tag() == "url" {
					return fmt.Errorf("%w: %s", errInvalidEndpoint, verrs[i].Namespace())
				}
			}
		}
		return err
	}
	return nil
}

// AuthenticatedSupport returns whether the key and secret required by the
// spot API are set to non default values
func (c *Config) AuthenticatedSupport() bool {
	return isSet(c.Credentials.Key, DefaultAPIKey) && isSet(c.Credentials.Secret, DefaultAPISecret)
}

// SwapAuthenticatedSupport returns whether the passphrase required by the
// swap API is also set
func (c *Config) SwapAuthenticatedSupport() bool {
	return c.AuthenticatedSupport() && isSet(c.Credentials.ClientID, DefaultAPIClientID)
}

// PurgeCredentials removes the API credentials from the config
func (c *Config) PurgeCredentials() {
	c.Credentials = Credentials{}
}

func isSet(v, unset string) bool {
	return v != "" && v != unset
}
