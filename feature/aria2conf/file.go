package aria2conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuanweize/BTtrackers-updater/core/tracker"

	"go.uber.org/zap"
)

// directivePrefix introduces the tracker list line in an aria2 config file.
const directivePrefix = "bt-tracker="

// File reads and rewrites the bt-tracker directive of an aria2 configuration
// file, leaving every other line untouched.
type File struct {
	cfg Config
	log *zap.Logger
}

// NewFile creates a File target for the configured path.
func NewFile(cfg Config, log *zap.Logger) *File {
	return &File{cfg: cfg, log: log}
}

// Path returns the configured file location.
func (f *File) Path() string {
	return f.cfg.Path
}

// Validate checks the preconditions for a rewrite: the file exists, is
// readable, and is writable. It has no side effect.
func (f *File) Validate() error {
	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("config file not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config file %s is a directory", f.cfg.Path)
	}

	r, err := os.Open(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("config file not readable: %w", err)
	}
	_ = r.Close()

	w, err := os.OpenFile(f.cfg.Path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("config file not writable: %w", err)
	}
	_ = w.Close()

	return nil
}

// ReadTrackers extracts the current tracker set from the file. The first
// line carrying the directive prefix is authoritative; its value is split on
// commas and newlines. A file without the directive yields an empty set,
// which is the "add directive" case rather than an error.
func (f *File) ReadTrackers() (tracker.Set, error) {
	data, err := os.ReadFile(f.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, directivePrefix) {
			return tracker.ParseList(strings.TrimPrefix(line, directivePrefix)), nil
		}
	}

	return tracker.NewSet(), nil
}

// Backup copies the file to <path><suffix> before mutation. Callers treat a
// backup failure as a warning, not an abort.
func (f *File) Backup() error {
	if !f.cfg.BackupEnabled {
		f.log.Debug("Backup disabled, skipping")
		return nil
	}

	data, err := os.ReadFile(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read config file for backup: %w", err)
	}

	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		return err
	}

	backupPath := f.cfg.Path + f.cfg.BackupSuffix
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	f.log.Info("Config file backed up", zap.String("backup", backupPath))
	return nil
}

// WriteTrackers rewrites the file with the merged tracker set. The first
// directive line is replaced with the comma-joined sorted set; all other
// lines pass through unchanged, including later duplicate directives. If no
// directive exists, one is appended at end of file. The write replaces the
// whole file, so a crash mid-write can corrupt it; the backup step is the
// accepted mitigation.
func (f *File) WriteTrackers(merged tracker.Set) error {
	data, err := os.ReadFile(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		return err
	}

	directive := directivePrefix + merged.Join()

	lines := strings.Split(string(data), "\n")
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), directivePrefix) {
			lines[i] = directive
			replaced = true
			break
		}
	}

	if !replaced {
		f.log.Info("No bt-tracker directive found, appending one")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			// keep the trailing newline after the appended directive
			lines[len(lines)-1] = directive
			lines = append(lines, "")
		} else {
			lines = append(lines, directive)
		}
	}

	if err := os.WriteFile(f.cfg.Path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
