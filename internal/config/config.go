// Package config handles the per-repository gitsy configuration file.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name, stored at the repository root.
const FileName = ".gitsy.toml"

// ErrNotFound is returned by Load when no config file exists.
var ErrNotFound = errors.New("config file not found")

// Config represents gitsy configuration.
type Config struct {
	// Directory holding managed worktrees.
	// Absolute, or relative to the repository root.
	WorktreePath string `toml:"worktree_path"`
}

// Path returns the config file path for a repository root.
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Exists reports whether the repository has a config file.
func Exists(repoRoot string) (bool, error) {
	_, err := os.Stat(Path(repoRoot))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load loads the config file of a repository.
func Load(repoRoot string) (*Config, error) {
	return LoadFromPath(Path(repoRoot))
}

// LoadFromPath loads and validates configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	fileLock, err := newLock(path)
	if err != nil {
		return nil, err
	}
	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", filepath.Base(path), err)
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Save writes the config file of a repository.
func Save(repoRoot string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	path := Path(repoRoot)

	// Acquire exclusive lock - blocks until lock is available
	fileLock, err := newLock(path)
	if err != nil {
		return err
	}
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", FileName, err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}

// lockDir returns the directory holding config lock files, outside any
// working tree.
func lockDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "gitsy", "locks")
}

// newLock returns the lock guarding the config file at path. Lock files
// are keyed by the absolute config path.
func newLock(path string) (*flock.Flock, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := lockDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}
	sum := sha256.Sum256([]byte(abs))
	return flock.New(filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock")), nil
}

// LoadOrCreate loads the repository config. When none exists, prompt is
// asked for the worktree path and the result is saved before returning.
// created reports whether the prompt ran.
func LoadOrCreate(repoRoot string, prompt func() (string, error)) (cfg *Config, created bool, err error) {
	exists, err := Exists(repoRoot)
	if err != nil {
		return nil, false, err
	}
	if exists {
		cfg, err = Load(repoRoot)
		return cfg, false, err
	}

	worktreePath, err := prompt()
	if err != nil {
		return nil, false, err
	}

	cfg = &Config{WorktreePath: worktreePath}
	if err := Save(repoRoot, cfg); err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WorktreePath) == "" {
		return errors.New("worktree_path must not be empty")
	}
	return nil
}

// WorkspaceRoot resolves the worktree path against the repository root.
// Absolute paths are used as given.
func (c *Config) WorkspaceRoot(repoRoot string) string {
	if filepath.IsAbs(c.WorktreePath) {
		return filepath.Clean(c.WorktreePath)
	}
	return filepath.Join(repoRoot, c.WorktreePath)
}
