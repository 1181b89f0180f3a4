// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/layerprocgen/relpack/pkg/docs"
)

const (
	// DefaultConfigFile is looked up in the working directory
	DefaultConfigFile = ".relpack.yaml"

	// ConfigEnv overrides the config file location
	ConfigEnv = "RELPACK_CONFIG"
)

// Config holds relpack project configuration
type Config struct {
	RepoRoot        string   `yaml:"repo_root"`
	Changelog       string   `yaml:"changelog"`
	FrontPage       string   `yaml:"front_page"`
	SiteURL         string   `yaml:"site_url"`
	ImageDir        string   `yaml:"image_dir"`
	ImageExtensions []string `yaml:"image_extensions,omitempty"`
	ProfilesDir     string   `yaml:"profiles_dir"`
	ArchiveDir      string   `yaml:"archive_dir"`
	CheckBranch     bool     `yaml:"check_branch"`
	Debug           bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		RepoRoot:        ".",
		Changelog:       "CHANGELOG.md",
		FrontPage:       "Documentation/README.md",
		SiteURL:         docs.DefaultSiteURL,
		ImageDir:        docs.DefaultImageDir,
		ImageExtensions: append([]string(nil), docs.DefaultImageExtensions...),
		ProfilesDir:     filepath.Join(".relpack", "profiles"),
		ArchiveDir:      "dist",
	}
}

// DocsOptions returns the documentation rewrite settings
func (c *Config) DocsOptions() docs.Options {
	return docs.Options{
		SiteURL:         c.SiteURL,
		ImageDir:        c.ImageDir,
		ImageExtensions: c.ImageExtensions,
	}
}

// Path resolves a repository-relative path against RepoRoot
func (c *Config) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.RepoRoot, rel)
}

// ConfigPath returns the file LoadConfig reads when given no path
func ConfigPath() string {
	if path := os.Getenv(ConfigEnv); path != "" {
		return path
	}
	return DefaultConfigFile
}

// LoadConfig loads configuration from file. A missing file yields defaults;
// fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = ConfigPath()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
