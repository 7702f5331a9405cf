// Package config provides layered configuration for the csvpeek CLI.
//
// Values are merged from four sources, lowest to highest precedence:
// built-in defaults, the TOML palette file, CSVPEEK_* environment
// variables, and command-line flags.
package config

// Config holds all viewer configuration: display options from flags and
// environment, plus the color scheme from the TOML palette file.
type Config struct {
	// Display options.
	Rows       int    `koanf:"rows"`        // 0 shows all rows
	RowNumbers bool   `koanf:"row_numbers"` // prepend a row-index column
	Width      int    `koanf:"width"`       // per-cell display-width cap, 0 = none
	Delimiter  string `koanf:"delimiter"`   // single character; \t for TSV
	NoHeader   bool   `koanf:"no_header"`   // first row is data, synthesize col0..colN
	Zebra      bool   `koanf:"zebra"`       // alternate row backgrounds
	Verbose    bool   `koanf:"verbose"`

	// Interactive selects the scrolling pager instead of static output.
	Interactive bool `koanf:"interactive"`

	// DayFirst prefers DD/MM/YYYY over MM/DD/YYYY for ambiguous dates.
	DayFirst bool `koanf:"day_first"`

	// Color scheme. Empty values fall back to built-in defaults at the
	// color-mapping layer, so a palette file may override any subset.
	Header     string         `koanf:"header"`
	RowIndex   string         `koanf:"row_index"`
	DataTypes  DataTypeColors `koanf:"data_types"`
	Background ZebraColors    `koanf:"background"`

	Pager PagerConfig `koanf:"pager"`
}

// DataTypeColors maps cell types to hex foreground colors.
type DataTypeColors struct {
	Text    string `koanf:"text"`
	Date    string `koanf:"date"`
	Float   string `koanf:"float"`
	Integer string `koanf:"integer"`
	Boolean string `koanf:"boolean"`
	Empty   string `koanf:"empty"`
}

// ZebraColors holds the alternating row background colors.
type ZebraColors struct {
	Even string `koanf:"even"`
	Odd  string `koanf:"odd"`
}

// PagerConfig holds scroll step sizes for the interactive pager.
type PagerConfig struct {
	ScrollSingleLine int `koanf:"scroll_single_line"`
	ScrollMultiLine  int `koanf:"scroll_multi_line"`
}

// Default configuration values.
const (
	DefaultRows             = 50
	DefaultDelimiter        = ","
	DefaultScrollSingleLine = 1
	DefaultScrollMultiLine  = 10
)
