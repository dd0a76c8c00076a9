package config

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

const minCronSecretLen = 16

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordCost < 4 || c.Auth.PasswordCost > 31 {
		return fmt.Errorf("auth.password_cost must be between 4 and 31 (got %d)", c.Auth.PasswordCost)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Redis.NotifyTTL <= 0 {
		return fmt.Errorf("redis.notify_ttl must be > 0 (got %s)", c.Redis.NotifyTTL)
	}

	if c.Limits.LoginPerMinute <= 0 || c.Limits.RegisterPerMinute <= 0 {
		return fmt.Errorf("limits must be > 0 (login %d, register %d)", c.Limits.LoginPerMinute, c.Limits.RegisterPerMinute)
	}

	if c.SMTP.Enabled() {
		if _, err := mail.ParseAddress(c.SMTP.From); err != nil {
			return fmt.Errorf("smtp.from: %w", err)
		}
	}

	if c.Cron.Secret != "" && len(c.Cron.Secret) < minCronSecretLen {
		return fmt.Errorf("cron.secret must be at least %d characters (got %d)", minCronSecretLen, len(c.Cron.Secret))
	}

	u, err := url.Parse(c.App.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("app.base_url must be an absolute URL (got %q)", c.App.BaseURL)
	}

	return nil
}
