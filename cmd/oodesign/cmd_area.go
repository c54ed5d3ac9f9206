package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oodesign/internal/geometry"
	"oodesign/internal/logging"
	"oodesign/internal/report"
)

func runArea(cmd *cobra.Command, args []string) error {
	log := logs.For(logging.CategoryGeometry)

	shapes, err := cfg.Shapes()
	if err != nil {
		return err
	}
	for _, s := range shapes {
		log.Debug("shape", zap.String("shape", fmt.Sprint(s)), zap.Float64("area", s.Area()))
	}

	total := geometry.NewAreaCalculator(shapes...).TotalArea()
	log.Info("total area computed", zap.Int("shapes", len(shapes)), zap.Float64("total", total))

	return report.NewPrinter(cmd.OutOrStdout()).Area(total)
}
