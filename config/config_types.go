package config

import (
	"errors"
	"time"

	"github.com/thrasher-corp/bitget-legacy/log"
)

// Constants declared here are filename strings and default values
const (
	File               = "config.yaml"
	EnvPrefix          = "BITGET"
	DefaultExchange    = "bitget"
	DefaultAPIKey      = "Key"
	DefaultAPISecret   = "Secret"
	DefaultAPIClientID = "ClientID"
	DefaultType        = "spot"
	defaultHTTPTimeout = time.Second * 15
	defaultUserAgent   = "bitget-legacy"
	// Public and private endpoints share a budget of 10 requests per second
	defaultRateLimitInterval = time.Second
	defaultRateLimitActions  = 10
	defaultRetryAttempts     = 3
	defaultRetryBackoff      = time.Millisecond * 100
)

// Constants here hold some messages
const (
	WarningAuthAPIDefaultOrEmptyValues = "exchange %s authenticated API support disabled due to default/empty APIKey/Secret/ClientID values"
)

var (
	errConfigIsNil     = errors.New("config is nil")
	errInvalidEndpoint = errors.New("invalid endpoint URL")
)

// Config is the overarching object that holds all the information for the
// adapter and its ambient services
type Config struct {
	Exchange    Exchange    `mapstructure:"exchange" json:"exchange" validate:"required"`
	Credentials Credentials `mapstructure:"credentials" json:"credentials"`
	Logging     log.Config  `mapstructure:"logging" json:"logging"`
}

// Exchange holds the exchange connection settings
type Exchange struct {
	Name          string        `mapstructure:"name" json:"name" validate:"required"`
	Verbose       bool          `mapstructure:"verbose" json:"verbose"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout" json:"httpTimeout" validate:"gte=0"`
	HTTPUserAgent string        `mapstructure:"http_user_agent" json:"httpUserAgent"`
	// DefaultType is the account type whose id is looked up when AccountID
	// is unset
	DefaultType string    `mapstructure:"default_type" json:"defaultType" validate:"omitempty,oneof=spot swap"`
	AccountID   string    `mapstructure:"account_id" json:"accountID,omitempty"`
	Endpoints   Endpoints `mapstructure:"endpoints" json:"endpoints"`
	RateLimit   RateLimit `mapstructure:"rate_limit" json:"rateLimit"`
	Retry       Retry     `mapstructure:"retry" json:"retry"`
}

// Endpoints holds overrides for the REST API base URLs
type Endpoints struct {
	Data string `mapstructure:"data" json:"data,omitempty" validate:"omitempty,url"`
	API  string `mapstructure:"api" json:"api,omitempty" validate:"omitempty,url"`
	Swap string `mapstructure:"swap" json:"swap,omitempty" validate:"omitempty,url"`
}

// RateLimit holds the request budget shared by all endpoints
type RateLimit struct {
	Interval time.Duration `mapstructure:"interval" json:"interval" validate:"gte=0"`
	Actions  int           `mapstructure:"actions" json:"actions" validate:"gte=0"`
}

// Retry bounds how often throttled or unavailable requests are reattempted.
// Backoff grows linearly per attempt up to one second.
type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts" json:"maxAttempts" validate:"gte=0"`
	Backoff     time.Duration `mapstructure:"backoff" json:"backoff" validate:"gte=0"`
}

// Credentials holds the API credentials
type Credentials struct {
	Key    string `mapstructure:"key" json:"key,omitempty"`
	Secret string `mapstructure:"secret" json:"secret,omitempty"`
	// ClientID is the passphrase required by the swap API
	ClientID string `mapstructure:"client_id" json:"clientID,omitempty"`
}
