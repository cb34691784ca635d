package snapshot

// Config holds configuration for report files.
type Config struct {
	// OutputDir is the directory reports are written to.
	OutputDir string `mapstructure:"output_dir" default:"."`
	// Prefix is the first component of report file names.
	Prefix string `mapstructure:"prefix" default:"leetcode"`
	// DateLayout is the Go time layout used for the date component.
	DateLayout string `mapstructure:"date_layout" default:"01022006"`
}

const (
	DefaultPrefix     = "leetcode"
	DefaultDateLayout = "01022006"
)

// WithDefaults fills empty fields with their defaults.
func (c Config) WithDefaults() Config {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.DateLayout == "" {
		c.DateLayout = DefaultDateLayout
	}
	return c
}
