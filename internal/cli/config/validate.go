package config

import (
	"fmt"
	"regexp"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks the configuration for values that would fail later at
// render time. Colors are either empty (use the built-in default) or a
// six-digit hex value like #FAB387.
func (c *Config) Validate() error {
	colors := map[string]string{
		"header":             c.Header,
		"row_index":          c.RowIndex,
		"data_types.text":    c.DataTypes.Text,
		"data_types.date":    c.DataTypes.Date,
		"data_types.float":   c.DataTypes.Float,
		"data_types.integer": c.DataTypes.Integer,
		"data_types.boolean": c.DataTypes.Boolean,
		"data_types.empty":   c.DataTypes.Empty,
		"background.even":    c.Background.Even,
		"background.odd":     c.Background.Odd,
	}
	for key, val := range colors {
		if val != "" && !hexColorPattern.MatchString(val) {
			return fmt.Errorf("invalid color for %s: %q (expected #RRGGBB)", key, val)
		}
	}

	if c.Rows < 0 {
		return fmt.Errorf("rows must be >= 0, got %d", c.Rows)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if len([]rune(c.Delimiter)) != 1 && c.Delimiter != `\t` {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.Pager.ScrollSingleLine < 1 {
		return fmt.Errorf("pager.scroll_single_line must be >= 1, got %d", c.Pager.ScrollSingleLine)
	}
	if c.Pager.ScrollMultiLine < 1 {
		return fmt.Errorf("pager.scroll_multi_line must be >= 1, got %d", c.Pager.ScrollMultiLine)
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune, translating
// the literal two-character escape `\t` to a tab for TSV files.
func (c *Config) DelimiterRune() rune {
	if c.Delimiter == `\t` {
		return '\t'
	}
	return []rune(c.Delimiter)[0]
}
