package config

import (
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/template"
	"github.com/MKhiriev/go-master-password/models"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultTemplate = template.TierLong
	DefaultLogLevel = "info"
)

// ClientUser holds the identity the client derives keys for.
type ClientUser struct {
	// FullName may be empty, in which case the client prompts for it.
	FullName string
}

// ClientSite describes the password to generate. Name may be empty, in
// which case the client prompts for it.
type ClientSite struct {
	Name    string
	Counter uint32
	Tier    template.Tier

	// CounterSet and TierSet report whether Counter and Tier were
	// configured or are defaults. Stored site profiles only fill defaults.
	CounterSet bool
	TierSet    bool
}

// ClientStorage holds the site profile database settings.
type ClientStorage struct {
	// DSN is empty when site profiles are disabled.
	DSN string
}

// ClientUI holds front-end toggles.
type ClientUI struct {
	Clipboard bool
	Identicon bool
}

// ClientLog holds logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	User    ClientUser
	Site    ClientSite
	UI      ClientUI
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig] and resolves it with
// [NewClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig applies defaults to cfg, parses the template tier and
// validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	counter := uint32(cfg.Site.Counter)
	if counter == 0 {
		counter = models.DefaultCounter
	}

	tier := DefaultTemplate
	if cfg.Site.Template != "" {
		parsed, err := template.ParseTier(cfg.Site.Template)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSiteConfigs, err)
		}
		tier = parsed
	}

	level := cfg.Log.Level
	if level == "" {
		level = DefaultLogLevel
	}

	clientCfg := &ClientConfig{
		User: ClientUser{
			FullName: cfg.User.FullName,
		},
		Site: ClientSite{
			Name:       cfg.Site.Name,
			Counter:    counter,
			Tier:       tier,
			CounterSet: cfg.Site.Counter != 0,
			TierSet:    cfg.Site.Template != "",
		},
		UI: ClientUI{
			Clipboard: cfg.UI.Clipboard,
			Identicon: cfg.UI.Identicon,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.DSN,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: level,
		},
	}

	return clientCfg, clientCfg.validate()
}

// SiteModel returns the site settings in the form the password service
// takes.
func (cfg *ClientConfig) SiteModel() models.Site {
	return models.Site{
		Name:     cfg.Site.Name,
		Counter:  cfg.Site.Counter,
		Template: cfg.Site.Tier.String(),
	}
}
