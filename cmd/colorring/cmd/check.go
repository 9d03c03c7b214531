package cmd

import (
	"fmt"

	"github.com/go-drift/colorring/pkg/config"
	"github.com/go-drift/colorring/pkg/progress"
	"github.com/go-drift/colorring/pkg/segment"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate a ring config file",
		Long: `Validate a ring configuration and print the resulting segments.

Without an argument, colorring.yaml in the current directory is used, and
defaults apply when it does not exist.`,
		Usage: "colorring check [config.yaml]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	model, err := segment.Build(cfg.Colors, cfg.StartAngle)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "stroke width: %d\n", cfg.StrokeWidth)
	fmt.Fprintf(stdout, "duration:     %v\n", cfg.Duration)
	fmt.Fprintf(stdout, "auto play:    %v\n", cfg.AutoPlay)
	fmt.Fprintf(stdout, "finalize:     %v (%s)\n", cfg.FinalizeWithPrimaryColor, config.FormatColor(cfg.PrimaryColor))
	fmt.Fprintf(stdout, "segments:     %d x %.1f°\n", model.Len(), model.BreakpointAngle())
	for _, s := range model.Segments() {
		fmt.Fprintf(stdout, "  #%d %s start %.1f° reveal [%.1f°, %.1f°)\n",
			s.Order, config.FormatColor(s.Color), s.StartAngle, s.RevealLimit, s.EndThreshold)
	}
	return nil
}

// loadConfig reads path, or colorring.yaml in the working directory when
// path is empty.
func loadConfig(path string) (progress.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(".")
}
