// Package config loads the report configuration and the run manifest from
// YAML. Configuration covers presentation defaults (titles, description
// strings, scaffold override); the manifest names one pipeline run's
// artifacts and precomputed counters.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-seqreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxTitleLength       = 200  // Report/index title
	MaxIntroLength       = 2000 // Index intro paragraph
	MaxDateLength        = 30   // "auto", "2026-08-31", or "August 31, 2026"
	MaxDescriptionLength = 4000 // Section description text
	MaxCaptionLength     = 200  // Figure caption/legend
	MaxTimeoutLength     = 20   // "30s", "2m"
)

// Config holds presentation configuration for report generation.
type Config struct {
	Report       ReportConfig       `yaml:"report"`
	Scaffold     ScaffoldConfig     `yaml:"scaffold"`
	Descriptions DescriptionsConfig `yaml:"descriptions"`
	PDF          PDFConfig          `yaml:"pdf"`
}

// ReportConfig defines index page options.
type ReportConfig struct {
	Title string `yaml:"title"` // Index page title (default: "Run Summary")
	Intro string `yaml:"intro"` // Optional intro paragraph on the index page
	Date  string `yaml:"date"`  // "auto", "auto:FORMAT", or literal; empty = omit
}

// ScaffoldConfig defines scaffold loading options.
type ScaffoldConfig struct {
	Dir string `yaml:"dir"` // Empty = use embedded scaffold
}

// DescriptionsConfig overrides the builder's description and caption
// defaults. Empty fields keep the built-in strings.
type DescriptionsConfig struct {
	StatusFilters        string `yaml:"statusFilters"`
	CellBarcode          string `yaml:"cellBarcode"`
	RMT                  string `yaml:"rmt"`
	Multialignment       string `yaml:"multialignment"`
	CellFiltering        string `yaml:"cellFiltering"`
	CellFilteringCaption string `yaml:"cellFilteringCaption"`
	CellFilteringLegend  string `yaml:"cellFilteringLegend"`
	CellSizeCaption      string `yaml:"cellSizeCaption"`
	CellSizeLegend       string `yaml:"cellSizeLegend"`
}

// PDFConfig defines PDF export options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration string, e.g. "30s" (default)
}

// DefaultConfig returns a neutral configuration: embedded scaffold, built-in
// description strings, no PDF export.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{Title: "Run Summary", Date: "auto"},
	}
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"report.title", c.Report.Title, MaxTitleLength},
		{"report.intro", c.Report.Intro, MaxIntroLength},
		{"report.date", c.Report.Date, MaxDateLength},
		{"descriptions.statusFilters", c.Descriptions.StatusFilters, MaxDescriptionLength},
		{"descriptions.cellBarcode", c.Descriptions.CellBarcode, MaxDescriptionLength},
		{"descriptions.rmt", c.Descriptions.RMT, MaxDescriptionLength},
		{"descriptions.multialignment", c.Descriptions.Multialignment, MaxDescriptionLength},
		{"descriptions.cellFiltering", c.Descriptions.CellFiltering, MaxDescriptionLength},
		{"descriptions.cellFilteringCaption", c.Descriptions.CellFilteringCaption, MaxCaptionLength},
		{"descriptions.cellFilteringLegend", c.Descriptions.CellFilteringLegend, MaxCaptionLength},
		{"descriptions.cellSizeCaption", c.Descriptions.CellSizeCaption, MaxCaptionLength},
		{"descriptions.cellSizeLegend", c.Descriptions.CellSizeLegend, MaxCaptionLength},
		{"pdf.timeout", c.PDF.Timeout, MaxTimeoutLength},
	}
	for _, ck := range checks {
		if err := validateFieldLength(ck.name, ck.value, ck.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in standard locations. Returns error if the file
// is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard
// locations. Tries .yaml then .yml, in the current directory then
// ~/.config/go-seqreport/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-seqreport", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
