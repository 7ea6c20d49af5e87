package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial config per source. Load errors are
// accumulated and reported by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 3)}
}

// add runs load and records its result under the given source name.
func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		cfg := new(StructuredConfig)
		return cfg, parseEnv(cfg)
	})
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) {
		return ParseFlags(), nil
	})
}

// withJSON loads the file named by the last source that set a path.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}
	return b.add("json", func() (*StructuredConfig, error) {
		return parseJSON(path)
	})
}

func (b *configBuilder) jsonPath() string {
	for i := len(b.configs) - 1; i >= 0; i-- {
		if p := b.configs[i].JSONFilePath; p != "" {
			return p
		}
	}
	return ""
}

// build merges the sources in order, later non-zero fields overriding
// earlier ones, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
