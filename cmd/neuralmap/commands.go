package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/neurotwin/core/internal/activation"
	"github.com/neurotwin/core/internal/config"
	"github.com/neurotwin/core/internal/impact"
	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/parser"
)

type app struct {
	log        *zap.Logger
	out        io.Writer
	calculator *activation.Calculator
	engine     *impact.Engine
}

func newApp(cfg *config.Config, log *zap.Logger, out io.Writer) *app {
	im := cfg.Impact
	return &app{
		log: log,
		out: out,
		calculator: activation.NewCalculator(
			activation.WithLogger(log),
			activation.WithSeverityWeights(cfg.Activation.DiagnosisWeights(), cfg.Activation.UnknownSeverityWeight),
		),
		engine: impact.NewEngine(
			impact.WithLogger(log),
			impact.WithWeights(impact.Weights{
				ActivityMagnitude:      im.ActivityMagnitude,
				ActivityConfidence:     im.ActivityConfidence,
				ConnectivityMagnitude:  im.ConnectivityMagnitude,
				ConnectivityConfidence: im.ConnectivityConfidence,
				MechanismMagnitude:     im.MechanismMagnitude,
			}),
			impact.WithThresholds(impact.Thresholds{
				High:     im.HighThreshold,
				Moderate: im.ModerateThreshold,
				Low:      im.LowThreshold,
			}),
			impact.WithProjectedTimeline(im.ProjectedTimeline),
			impact.WithReversibility(models.Reversibility(im.Reversibility)),
		),
	}
}

func (a *app) validate(fs *flag.FlagSet, args []string) error {
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("expected one model file")
	}

	model, err := a.loadModel(fs.Arg(0))
	if err != nil {
		return err
	}

	a.log.Info("brain model is valid",
		zap.String("model_id", model.ID),
		zap.Int("regions", len(model.Regions)),
		zap.Int("connections", len(model.Connections)))
	return a.write(model, *pretty)
}

func (a *app) activation(fs *flag.FlagSet, args []string) error {
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usageError("expected a model file and a catalog file")
	}

	model, err := a.loadModel(fs.Arg(0))
	if err != nil {
		return err
	}
	catalog, err := a.loadCatalog(fs.Arg(1))
	if err != nil {
		return err
	}

	scores, err := a.calculator.Calculate(activation.InputFromCatalog(model.Regions, catalog)).Unwrap()
	if err != nil {
		return err
	}
	return a.write(scores, *pretty)
}

func (a *app) impact(fs *flag.FlagSet, args []string) error {
	pretty := fs.Bool("pretty", false, "indent JSON output")
	treatments := fs.String("treatments", "", "comma-separated treatment ids (default: the catalog's treatmentIds)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return usageError("expected one catalog file")
	}

	catalog, err := a.loadCatalog(fs.Arg(0))
	if err != nil {
		return err
	}

	ids := catalog.TreatmentIDs
	if *treatments != "" {
		ids = splitIDs(*treatments)
	}

	rating, err := a.engine.Rate(catalog.TreatmentMappings, ids).Unwrap()
	if err != nil {
		return err
	}
	return a.write(rating, *pretty)
}

func (a *app) loadModel(path string) (*models.BrainModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	model, err := parser.ParseBrainModel(data)
	if err != nil {
		return nil, describe("invalid brain model", err)
	}
	return model, nil
}

func (a *app) loadCatalog(path string) (*models.MappingCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	catalog, err := parser.ParseMappingCatalog(data)
	if err != nil {
		return nil, describe("invalid mapping catalog", err)
	}
	return catalog, nil
}

func (a *app) write(v any, pretty bool) error {
	encoder := json.NewEncoder(a.out)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

// describe adds the offending field to validation failures.
func describe(what string, err error) error {
	var verr *parser.ValidationError
	if errors.As(err, &verr) && verr.Field != "" {
		return fmt.Errorf("%s (field %s): %w", what, verr.Field, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

func splitIDs(s string) []string {
	var ids []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
