// Package config loads the demo's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/slidemenu/internal/logging"
	"github.com/llehouerou/slidemenu/internal/menu"
	"github.com/llehouerou/slidemenu/internal/routes"
	"github.com/llehouerou/slidemenu/internal/theme"
)

// AppName names the config and state directories.
const AppName = "slidemenu"

// Config is the demo's configuration after defaults are applied.
type Config struct {
	Position     string          `koanf:"position"`      // "left" or "right"
	CurrentRoute string          `koanf:"current_route"` // id of the page shown at startup
	Header       string          `koanf:"header"`
	Theme        theme.Overrides `koanf:"theme"`
	Routes       []routes.Route  `koanf:"routes"`
	Socials      []Social        `koanf:"socials"`
	Log          LogConfig       `koanf:"log"`

	// Files lists the config files that were read, in load order.
	Files []string `koanf:"-"`
}

// Social is a link shown in the menu's socials block.
type Social struct {
	Label string `koanf:"label"`
	URL   string `koanf:"url"`
}

// LogConfig holds logging settings. Logging is off unless File or Debug
// is set; Debug alone writes to the default state file.
type LogConfig struct {
	File  string `koanf:"file"`
	Debug bool   `koanf:"debug"`
}

// Logging returns the logger settings, with debug forced on by the
// command line.
func (c LogConfig) Logging(debug bool) logging.Config {
	debug = debug || c.Debug
	return logging.Config{
		Enabled: c.File != "" || debug,
		File:    c.File,
		Debug:   debug,
	}
}

// DefaultRoutes are used when the config names none.
var DefaultRoutes = []routes.Route{
	{ID: "/", Label: "Home"},
	{ID: "/about", Label: "About"},
	{ID: "/work", Label: "Work"},
	{ID: "/contact", Label: "Contact"},
}

// DefaultSocials are used when the config names none.
var DefaultSocials = []Social{
	{Label: "GitHub", URL: "https://github.com"},
	{Label: "Mastodon", URL: "https://mastodon.social"},
}

// Load reads the config. An explicit path is the only file read and must
// exist; otherwise every file in SearchPaths that exists is merged, later
// files winning.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	var files []string
	if path != "" {
		path = expandPath(path)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, path)
	} else {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("read %s: %w", p, err)
			}
			files = append(files, p)
		}
	}

	cfg := &Config{
		CurrentRoute: "/",
		Header:       strings.ToUpper(AppName),
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Files = files

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// SearchPaths returns the config files Load considers, lowest priority first.
func SearchPaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, AppName, "config.toml"),
		"config.toml",
	}
}

func (c *Config) validate() error {
	var errs []error
	if _, err := menu.ParsePosition(c.Position); err != nil {
		errs = append(errs, err)
	}
	for i, r := range c.Routes {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("routes[%d]: missing id", i))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) applyDefaults() {
	if len(c.Routes) == 0 {
		c.Routes = append([]routes.Route(nil), DefaultRoutes...)
	}
	if len(c.Socials) == 0 {
		c.Socials = append([]Social(nil), DefaultSocials...)
	}
	if c.Log.File != "" {
		c.Log.File = expandPath(c.Log.File)
	}
}

// MenuPosition returns the parsed panel position. Load has already
// rejected invalid values.
func (c *Config) MenuPosition() menu.Position {
	p, _ := menu.ParsePosition(c.Position)
	return p
}

// ResolveTheme resolves the configured overrides against the defaults.
func (c *Config) ResolveTheme() theme.Theme {
	return theme.Resolve(c.Theme, nil)
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
