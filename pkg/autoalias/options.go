// Package autoalias binds aliases derived from label cells to the value
// cells next to them.
package autoalias

import "log/slog"

const (
	// DefaultMaxAliasAttempts bounds disambiguation: the base alias plus
	// suffixes 2..999.
	DefaultMaxAliasAttempts = 999
	// DefaultFallbackRows is the row bound of the scan used for grids that
	// cannot enumerate their cells.
	DefaultFallbackRows = 2000
	// DefaultFallbackColumns is the column bound of that scan (A..Z).
	DefaultFallbackColumns = 26
	// DefaultValue is written to empty value cells before they get an alias.
	DefaultValue = "0"
)

// Options configures synchronization. Zero fields take their defaults.
type Options struct {
	// MaxAliasAttempts is the number of alias candidates tried per label,
	// including the unsuffixed one.
	MaxAliasAttempts int
	// FallbackRows and FallbackColumns bound the brute-force scan.
	FallbackRows    int
	FallbackColumns int
	// DefaultValue initializes empty value cells.
	DefaultValue string
	// Logger receives per-candidate warnings and summaries.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default synchronization options.
func DefaultOptions() Options {
	return Options{
		MaxAliasAttempts: DefaultMaxAliasAttempts,
		FallbackRows:     DefaultFallbackRows,
		FallbackColumns:  DefaultFallbackColumns,
		DefaultValue:     DefaultValue,
	}
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.MaxAliasAttempts <= 0 {
		o.MaxAliasAttempts = DefaultMaxAliasAttempts
	}
	if o.FallbackRows <= 0 {
		o.FallbackRows = DefaultFallbackRows
	}
	if o.FallbackColumns <= 0 {
		o.FallbackColumns = DefaultFallbackColumns
	}
	if o.DefaultValue == "" {
		o.DefaultValue = DefaultValue
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}
