package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/vaibhaw-/sugarjazy/internal/sugarjazy/colors"
)

const (
	DefaultTimeFormat       = "%H:%M:%S"
	DefaultRegexpColor      = "CYAN"
	DefaultKailPrefixFormat = "{namespace}/{pod}[{container}]"
	DefaultLogLevel         = "warn"
)

// ErrKailWithFiles is returned when kail mode is combined with file arguments.
var ErrKailWithFiles = errors.New("kail mode only works on a stdin stream, not with files")

var placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

// braceEscapes drops doubled braces, which render as literals.
var braceEscapes = strings.NewReplacer("{{", "", "}}", "")

var kailPlaceholders = map[string]bool{
	"namespace": true,
	"pod":       true,
	"container": true,
}

// Config is built once per run from flags (and SUGARJAZY_* env overrides) and
// not modified after Validate.
type Config struct {
	TimeFormat            string `mapstructure:"timeformat"`
	RegexpHighlight       string `mapstructure:"regexp-highlight"`
	RegexpColor           string `mapstructure:"regexp-color"`
	DisableEventColouring bool   `mapstructure:"disable-event-colouring"`
	FilterLevel           string `mapstructure:"filter-level"`
	HideTimestamp         bool   `mapstructure:"hide-timestamp"`
	Kail                  bool   `mapstructure:"kail"`
	KailNoPrefix          bool   `mapstructure:"kail-no-prefix"`
	KailPrefixFormat      string `mapstructure:"kail-prefix-format"`
	Stream                bool   `mapstructure:"stream"`
	Color                 string `mapstructure:"color"`
	LogLevel              string `mapstructure:"log-level"`

	// Files come from positional arguments, never from viper.
	Files []string `mapstructure:"-"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("timeformat", DefaultTimeFormat)
	v.SetDefault("regexp-color", DefaultRegexpColor)
	v.SetDefault("kail-prefix-format", DefaultKailPrefixFormat)
	v.SetDefault("color", string(colors.ModeAlways))
	v.SetDefault("log-level", DefaultLogLevel)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}

// Validate checks every option that can be rejected before input is read.
// Kail mode switches on streaming as a side effect.
func (c *Config) Validate() error {
	if c.Kail && len(c.Files) > 0 {
		return ErrKailWithFiles
	}
	if c.Kail {
		c.Stream = true
	}
	if c.TimeFormat == "" {
		c.TimeFormat = DefaultTimeFormat
	}
	if c.KailPrefixFormat == "" {
		c.KailPrefixFormat = DefaultKailPrefixFormat
	}
	if c.RegexpColor == "" {
		c.RegexpColor = DefaultRegexpColor
	}
	if _, err := colors.ParseName(c.RegexpColor); err != nil {
		return fmt.Errorf("--regexp-color: %w", err)
	}
	if _, err := colors.ParseMode(c.Color); err != nil {
		return fmt.Errorf("--color: %w", err)
	}
	if c.RegexpHighlight != "" {
		if _, err := regexp.Compile(c.RegexpHighlight); err != nil {
			return fmt.Errorf("--regexp-highlight: %w", err)
		}
	}
	for _, m := range placeholderRe.FindAllStringSubmatch(braceEscapes.Replace(c.KailPrefixFormat), -1) {
		if !kailPlaceholders[m[1]] {
			return fmt.Errorf("--kail-prefix-format: unknown placeholder %q (valid: {namespace}, {pod}, {container})", m[0])
		}
	}
	if c.FilterLevel != "" && len(c.Levels()) == 0 {
		return fmt.Errorf("--filter-level: no level in %q", c.FilterLevel)
	}
	return nil
}

// Levels returns the lowercased severity allow-list, or nil when no filter is set.
func (c *Config) Levels() []string {
	if strings.TrimSpace(c.FilterLevel) == "" {
		return nil
	}
	var levels []string
	for _, l := range strings.Split(c.FilterLevel, ",") {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			levels = append(levels, l)
		}
	}
	return levels
}
