package config

import (
	"os"
	"strconv"

	"github.com/gustavojorge/statistical-tests-suit/internal/errors"
)

// Config holds the settings shared by the suite's command-line tools.
type Config struct {
	// Alpha is the significance level used both when flagging
	// Kruskal-Wallis output lines and as the default for the test
	// commands. Must be in (0, 0.1].
	Alpha float64

	// CSVName is the file name of the comparative table written beside
	// the analysis directory.
	CSVName string

	// ManifestName is the file listing the processed instances inside
	// the analysis directory.
	ManifestName string
}

// Load reads configuration from environment variables and validates it.
// Every field has a working default; the environment only overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Alpha:        0.05,
		CSVName:      "comparative_results.csv",
		ManifestName: "processed_instances.txt",
	}

	if v := os.Getenv("STS_ALPHA"); v != "" {
		alpha, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid STS_ALPHA %q", v)
		}
		cfg.Alpha = alpha
	}
	if v := os.Getenv("STS_CSV_NAME"); v != "" {
		cfg.CSVName = v
	}
	if v := os.Getenv("STS_MANIFEST_NAME"); v != "" {
		cfg.ManifestName = v
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Alpha <= 0 || cfg.Alpha > 0.1 {
		return errors.Newf(errors.CodeConfigInvalid, "significance alpha must be in (0, 0.1], got %g", cfg.Alpha)
	}
	if cfg.CSVName == "" {
		return errors.New(errors.CodeConfigInvalid, "CSV name must not be empty")
	}
	if cfg.ManifestName == "" {
		return errors.New(errors.CodeConfigInvalid, "manifest name must not be empty")
	}
	return nil
}
