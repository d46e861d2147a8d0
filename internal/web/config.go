package web

import (
	"github.com/postline/internal/config"
	"github.com/postline/internal/parser"
)

// ParseDefaults turns the service configuration into the parse options every
// request starts from.
func ParseDefaults(cfg *config.Config) parser.Options {
	opts := parser.DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.DefaultCountry != "" {
		opts.Country = cfg.DefaultCountry
	}
	opts.Strict = cfg.Strict
	opts.ValidatePostalCode = cfg.ValidatePostal
	return opts
}
