package accessgate

import (
	"crypto/subtle"
	"errors"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"Employee-Attendance-Portal/models"
)

const (
	ReasonDisabled  = "restriction disabled"
	ReasonLocal     = "running locally"
	ReasonListed    = "address allowed"
	ReasonOverride  = "admin override"
	ReasonForbidden = "address not allowed"
)

type Options struct {
	// RestrictionEnabled is the process-wide switch; the file can only narrow it.
	RestrictionEnabled bool
	OverrideCode       string
	Local              bool
}

// Gate decides whether a client address may use the portal.
type Gate struct {
	path string
	opts Options

	mu  sync.RWMutex
	cfg *Config

	forced atomic.Bool
}

func New(path string, opts Options) (*Gate, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Gate{path: path, opts: opts, cfg: cfg}, nil
}

func (g *Gate) Path() string {
	return g.path
}

// Config returns a copy of the current allow-list.
func (g *Gate) Config() *Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg.Clone()
}

// Reload re-reads the file. On error the previous list stays in effect.
func (g *Gate) Reload() error {
	cfg, err := LoadConfig(g.path)
	if err != nil {
		return err
	}
	g.mu.Lock()
	g.cfg = cfg
	g.mu.Unlock()
	return nil
}

// Update edits a copy of the list, persists it and swaps it in. Nothing is
// written when fn or validation fails.
func (g *Gate) Update(fn func(*Config) error) (*Config, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	next := g.cfg.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	if err := SaveConfig(g.path, next); err != nil {
		return nil, err
	}
	g.cfg = next
	return next.Clone(), nil
}

// Restricted reports whether both the process switch and the file flag are on.
func (g *Gate) Restricted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.opts.RestrictionEnabled && g.cfg.RestrictionEnabled()
}

// Allowed reports whether ip is on the list. Loopback is always allowed.
func (g *Gate) Allowed(ip string) bool {
	if isLoopback(ip) {
		return true
	}
	norm, err := NormalizeIP(ip)
	if err != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, allowed := range g.cfg.AllowedIPs {
		if allowed == norm {
			return true
		}
	}
	return false
}

func (g *Gate) Decide(clientIP string, override bool) models.GateDecision {
	d := models.GateDecision{Allowed: true, ClientIP: clientIP}
	switch {
	case !g.Restricted():
		d.Reason = ReasonDisabled
	case g.opts.Local:
		d.Reason = ReasonLocal
	case g.Allowed(clientIP):
		d.Reason = ReasonListed
	case override:
		d.Reason = ReasonOverride
	default:
		d.Allowed = false
		d.Reason = ReasonForbidden
	}
	return d
}

// CheckOverrideCode compares in constant time. An unset code never matches.
func (g *Gate) CheckOverrideCode(code string) bool {
	if g.opts.OverrideCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.opts.OverrideCode), []byte(code)) == 1
}

// ConsumeForceOverride removes the marker file if present and arms a one-shot
// override for the next session that reaches the gate.
func (g *Gate) ConsumeForceOverride(marker string) bool {
	err := os.Remove(marker)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("accessgate: failed to consume %s: %v", marker, err)
		}
		return false
	}
	g.forced.Store(true)
	log.Printf("accessgate: force override armed from %s", marker)
	return true
}

// TakeForcedOverride returns true exactly once after ConsumeForceOverride.
func (g *Gate) TakeForcedOverride() bool {
	return g.forced.CompareAndSwap(true, false)
}

func isLoopback(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "localhost" {
		return true
	}
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
