package accessgate

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidIP = errors.New("not a valid IP address")

// Config is the allow-list file. A missing file means DefaultConfig.
type Config struct {
	Enabled     *bool    `yaml:"enabled,omitempty"`
	AllowedIPs  []string `yaml:"allowed_ips"`
	Description string   `yaml:"description,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{AllowedIPs: []string{"127.0.0.1"}}
}

// RestrictionEnabled is true unless the file explicitly disables it.
func (c *Config) RestrictionEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c *Config) SetEnabled(on bool) {
	c.Enabled = &on
}

func (c *Config) Clone() *Config {
	out := &Config{
		AllowedIPs:  append([]string(nil), c.AllowedIPs...),
		Description: c.Description,
	}
	if c.Enabled != nil {
		v := *c.Enabled
		out.Enabled = &v
	}
	return out
}

// NormalizeIP returns the canonical text form of an IP literal.
func NormalizeIP(s string) (string, error) {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidIP, s)
	}
	return ip.String(), nil
}

// AddIP appends ip unless it is already listed. It reports whether the list changed.
func (c *Config) AddIP(ip string) (bool, error) {
	norm, err := NormalizeIP(ip)
	if err != nil {
		return false, err
	}
	for _, existing := range c.AllowedIPs {
		if existing == norm {
			return false, nil
		}
	}
	c.AllowedIPs = append(c.AllowedIPs, norm)
	return true, nil
}

func (c *Config) RemoveIP(ip string) bool {
	norm, err := NormalizeIP(ip)
	if err != nil {
		norm = strings.TrimSpace(ip)
	}
	for i, existing := range c.AllowedIPs {
		if existing == norm {
			c.AllowedIPs = append(c.AllowedIPs[:i], c.AllowedIPs[i+1:]...)
			return true
		}
	}
	return false
}

// Validate rejects any entry that is not an IP literal.
func (c *Config) Validate() error {
	for _, ip := range c.AllowedIPs {
		if _, err := NormalizeIP(ip); err != nil {
			return err
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read IP config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse IP config: %w", err)
	}
	if cfg.AllowedIPs == nil {
		cfg.AllowedIPs = []string{"127.0.0.1"}
	}
	return cfg, nil
}

// SaveConfig validates cfg and replaces the file atomically.
func SaveConfig(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode IP config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create IP config directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write IP config: %w", err)
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write IP config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write IP config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace IP config: %w", err)
	}
	return nil
}
