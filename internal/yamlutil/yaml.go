// Package yamlutil handles the YAML surfaces of litweave: front matter
// headers and build configuration files. Callers go through this
// package so both surfaces share one set of input guards.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxHeaderSize bounds YAML input. Front matter and config files run a
// few hundred bytes; an input past this bound is a misdirected file,
// not a bigger header.
const MaxHeaderSize = 64 << 10

// Sentinel errors for YAML operations.
var (
	ErrNoData         = errors.New("yamlutil: no data")
	ErrNilDestination = errors.New("yamlutil: nil destination")
	ErrHeaderTooLarge = errors.New("yamlutil: input exceeds size bound")
)

// Unmarshal decodes YAML data into v.
func Unmarshal(data []byte, v any) error {
	if err := check(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict decodes YAML data into v, rejecting unknown fields.
// A typo in a config key fails loudly instead of silently defaulting.
func UnmarshalStrict(data []byte, v any) error {
	if err := check(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return data, nil
}

func check(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNoData
	}
	if len(data) > MaxHeaderSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrHeaderTooLarge, len(data), MaxHeaderSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}
