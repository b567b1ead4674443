// Package config describes how cross-sections are edited and where the
// results go.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lip describes where a lip begins and ends, as arc lengths from its tip
// expressed in fractions of the chord length.
type Lip struct {
	// Before is measured walking from the tip towards the start of the
	// contour, After towards its end.
	Before float64 `yaml:"before"`
	After  float64 `yaml:"after"`
	// Reverse marks a lip whose points run against the forward reshaping
	// convention.
	Reverse bool `yaml:"reverse"`
}

// Outputs names the files written for each variant of the cross-section.
type Outputs struct {
	BothLips   string `yaml:"both_lips"`
	NoFrontLip string `yaml:"no_front_lip"`
	NoBackLip  string `yaml:"no_back_lip"`
	NoLips     string `yaml:"no_lips"`
}

// Body configures the export of a section as an immersed body.
type Body struct {
	// Section is the variant to export, one of the Outputs file names.
	Section string `yaml:"section"`
	// Spacing is the target distance between body points.
	Spacing float64 `yaml:"ds"`
	// Angle is the angle of attack in degrees; the body is rotated by it
	// about the origin.
	Angle  float64 `yaml:"angle"`
	Output string  `yaml:"output"`
}

type Config struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`
	// Tolerance is the largest distance allowed when matching a tip to a
	// contour point.
	Tolerance     float64 `yaml:"tolerance"`
	CircleSamples int     `yaml:"circle_samples"`
	Front         Lip     `yaml:"front"`
	Back          Lip     `yaml:"back"`
	Outputs       Outputs `yaml:"outputs"`
	Body          Body    `yaml:"body"`
}

// Default returns the settings used to produce the published sections.
func Default() Config {
	return Config{
		Input:         "snakeFigshare.txt",
		OutputDir:     ".",
		CircleSamples: 50,
		Front:         Lip{Before: 0.25, After: 0.25},
		Back:          Lip{Before: 0.25, After: 0.25, Reverse: true},
		Outputs: Outputs{
			BothLips:   "snake_bothlips.txt",
			NoFrontLip: "snake_nofrontlip.txt",
			NoBackLip:  "snake_nobacklip.txt",
			NoLips:     "snake_nolips.txt",
		},
		Body: Body{
			Section: "snake_nobacklip.txt",
			Spacing: 0.004,
			Angle:   -33,
			Output:  "snake.body",
		},
	}
}

// Parse overlays the YAML document in data on the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if cfg.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance %g is negative", cfg.Tolerance))
	}
	if cfg.CircleSamples < 2 {
		errs = append(errs, fmt.Errorf("circle_samples %d is less than 2", cfg.CircleSamples))
	}
	lips := []struct {
		name string
		lip  Lip
	}{
		{"front", cfg.Front},
		{"back", cfg.Back},
	}
	for _, l := range lips {
		if !(l.lip.Before > 0) || !(l.lip.After > 0) {
			errs = append(errs, fmt.Errorf("%s lip: before and after must be positive, got %g and %g", l.name, l.lip.Before, l.lip.After))
		}
	}
	o := cfg.Outputs
	if o.BothLips == "" || o.NoFrontLip == "" || o.NoBackLip == "" || o.NoLips == "" {
		errs = append(errs, errors.New("all output file names are required"))
	}
	if cfg.Body.Section == "" {
		errs = append(errs, errors.New("body section is required"))
	}
	if !(cfg.Body.Spacing > 0) {
		errs = append(errs, fmt.Errorf("body spacing %g must be positive", cfg.Body.Spacing))
	}
	if cfg.Body.Output == "" {
		errs = append(errs, errors.New("body output is required"))
	}
	return errors.Join(errs...)
}
