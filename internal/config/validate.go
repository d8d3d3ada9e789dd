package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateCDN(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAPI() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must be set")
	}
	if _, err := url.Parse(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url is not a valid url: %w", err)
	}
	if c.API.TimeoutSeconds <= 0 {
		return errors.New("api.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateCDN() error {
	if c.CDN.BaseURL == "" {
		return errors.New("cdn.base_url must be set")
	}
	if _, err := url.Parse(c.CDN.BaseURL); err != nil {
		return fmt.Errorf("cdn.base_url is not a valid url: %w", err)
	}
	if c.CDN.Bitrate <= 0 {
		return errors.New("cdn.bitrate must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
