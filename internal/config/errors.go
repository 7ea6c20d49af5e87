package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when a configuration
// group is invalid.
var (
	// ErrInvalidUserConfigs indicates an invalid user identity (for example,
	// a full name that is not valid UTF-8).
	ErrInvalidUserConfigs = errors.New("invalid user configuration")
	// ErrInvalidSiteConfigs indicates invalid site settings (for example, an
	// unknown template tier).
	ErrInvalidSiteConfigs = errors.New("invalid site configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings (for example,
	// an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
