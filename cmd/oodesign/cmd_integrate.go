package main

import (
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oodesign/internal/integrand"
	"oodesign/internal/logging"
	"oodesign/internal/quadrature"
	"oodesign/internal/report"
)

func runIntegrate(cmd *cobra.Command, args []string) error {
	ic := cfg.Integration

	fn, err := resolveIntegrand(ic.Integrand)
	if err != nil {
		return err
	}
	strategies, err := quadrature.LookupAll(ic.Strategies)
	if err != nil {
		return err
	}

	integrator, err := quadrature.NewIntegrator(strategies[0],
		quadrature.WithLogger(logs.For(logging.CategoryQuadrature)))
	if err != nil {
		return err
	}

	p := report.NewPrinter(cmd.OutOrStdout())
	for i, s := range strategies {
		if i > 0 {
			if err := integrator.SetStrategy(s); err != nil {
				return err
			}
		}
		v, err := integrator.Integrate(fn.F, ic.Lower, ic.Upper, ic.Partitions)
		if err != nil {
			return err
		}
		if err := p.Estimate(s.Name(), v); err != nil {
			return err
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	ic := cfg.Integration
	log := logs.For(logging.CategoryQuadrature)

	fn, err := resolveIntegrand(ic.Integrand)
	if err != nil {
		return err
	}
	strategies, err := quadrature.LookupAll(ic.Strategies)
	if err != nil {
		return err
	}

	ns := ic.Sweep
	if len(ns) == 0 {
		ns = []int{ic.Partitions}
	}
	estimates, err := quadrature.Sweep(cmd.Context(), fn.F, ic.Lower, ic.Upper, strategies, ns)
	if err != nil {
		return err
	}
	log.Info("sweep finished", zap.Int("estimates", len(estimates)))

	exact, ok := fn.Exact(ic.Lower, ic.Upper)
	if !ok {
		exact = math.NaN()
	}
	rows := make([]report.Row, len(estimates))
	for i, e := range estimates {
		rows[i] = report.Row{Estimate: e, Exact: exact}
	}
	return report.NewPrinter(cmd.OutOrStdout()).Table(rows)
}

func resolveIntegrand(spec string) (integrand.Integrand, error) {
	fn, err := integrand.Resolve(spec)
	if err != nil {
		return integrand.Integrand{}, err
	}
	logs.For(logging.CategoryIntegrand).Debug("integrand resolved",
		zap.String("spec", spec),
		zap.String("name", fn.Name),
		zap.Bool("exact_known", fn.Antiderivative != nil))
	return fn, nil
}
