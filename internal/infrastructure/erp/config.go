package erp

import (
	"errors"
	"time"
)

// Configuration validation errors surfaced at client construction.
var (
	ErrMissingBaseURL = errors.New("erp config: base url is required")
	ErrMissingToken   = errors.New("erp config: api token is required")
	ErrMissingSecret  = errors.New("erp config: api secret is required")
)

// Config holds the connection settings for the upstream ERP. Token and
// Secret form the static Basic credential sent on every request. WarehouseID
// and PriceListID are optional at construction; the operations that need
// them fail with a configuration error when they are empty.
type Config struct {
	BaseURL     string
	Token       string
	Secret      string
	StoreID     int
	CDNBaseURL  string
	WarehouseID string
	PriceListID string
	Timeout     time.Duration
}

// Validate checks the settings required by every operation.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}

func (c *Config) normalize() {
	if c.StoreID <= 0 {
		c.StoreID = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
}
