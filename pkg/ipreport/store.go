package ipreport

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type reportedFile struct {
	ReportedIPs []string `json:"reported_ips"`
}

// Store persists reported addresses, de-duplicated, in a JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add records ip and reports whether it was new.
func (s *Store) Add(ip string) (bool, error) {
	ip = strings.TrimSpace(ip)
	s.mu.Lock()
	defer s.mu.Unlock()
	ips, err := s.read()
	if err != nil {
		return false, err
	}
	for _, existing := range ips {
		if existing == ip {
			return false, nil
		}
	}
	return true, s.write(append(ips, ip))
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write([]string{})
}

func (s *Store) read() ([]string, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read reported IPs: %w", err)
	}
	var f reportedFile
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("failed to parse reported IPs: %w", err)
	}
	if f.ReportedIPs == nil {
		f.ReportedIPs = []string{}
	}
	return f.ReportedIPs, nil
}

func (s *Store) write(ips []string) error {
	buf, err := json.MarshalIndent(reportedFile{ReportedIPs: ips}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create reported IPs directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("failed to write reported IPs: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write reported IPs: %w", err)
	}
	return nil
}
