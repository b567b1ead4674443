package main

import (
	"path/filepath"

	"github.com/sgostarter/i/l"
	"github.com/snakelips/contour/internal/bodyfile"
	"github.com/snakelips/contour/internal/config"
	"github.com/snakelips/contour/internal/section"
	"github.com/spf13/cobra"
)

var (
	inputPath string
	outputDir string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Write the section variants with and without lips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runSections(cfg, newLogger())
	},
}

var bodyCmd = &cobra.Command{
	Use:   "body",
	Short: "Export a section variant as a regularly spaced, rotated body",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return runBody(cfg, newLogger())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{sectionsCmd, bodyCmd} {
		cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory holding the section files")
		rootCmd.AddCommand(cmd)
	}
	sectionsCmd.Flags().StringVarP(&inputPath, "input", "i", "", "raw cross-section file")
}

// loadConfig reads the configuration and applies the flags that override it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = inputPath
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}

func runSections(cfg config.Config, logger l.Wrapper) error {
	raw, err := bodyfile.ReadSectionFile(cfg.Input)
	if err != nil {
		logger.WithFields(l.StringField("input", cfg.Input), l.ErrorField(err)).Error("read section")
		return err
	}
	s, err := section.NewBuilder(cfg, logger).Build(raw)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("build sections")
		return err
	}
	if err := s.Write(cfg.OutputDir, cfg.Outputs); err != nil {
		logger.WithFields(l.StringField("dir", cfg.OutputDir), l.ErrorField(err)).Error("write sections")
		return err
	}
	logger.WithFields(
		l.StringField("dir", cfg.OutputDir),
		l.IntField("points", s.BothLips.Size()),
	).Debug("sections written")
	return nil
}

func runBody(cfg config.Config, logger l.Wrapper) error {
	in := filepath.Join(cfg.OutputDir, cfg.Body.Section)
	c, err := bodyfile.ReadSectionFile(in)
	if err != nil {
		logger.WithFields(l.StringField("input", in), l.ErrorField(err)).Error("read section")
		return err
	}
	body, err := section.PrepareBody(c, cfg.Body.Spacing, cfg.Body.Angle)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("prepare body")
		return err
	}
	out := filepath.Join(cfg.OutputDir, cfg.Body.Output)
	if err := bodyfile.WriteBodyFile(out, body); err != nil {
		logger.WithFields(l.StringField("output", out), l.ErrorField(err)).Error("write body")
		return err
	}
	logger.WithFields(l.StringField("output", out), l.IntField("points", body.Size())).Debug("body written")
	return nil
}
