// Package activation fuses symptom and diagnosis evidence into a per-region
// activation score.
package activation

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/neurotwin/core/internal/logger"
	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/result"
)

const failurePrefix = "Failed to calculate neural activation"

// DefaultSeverityWeights returns a fresh copy of the table that stands in
// for severity/10 when a diagnosis is folded in.
func DefaultSeverityWeights() map[models.DiagnosisSeverity]float64 {
	return map[models.DiagnosisSeverity]float64{
		models.SeverityMild:        0.3,
		models.SeverityModerate:    0.6,
		models.SeveritySevere:      0.9,
		models.SeverityInRemission: 0.15,
		models.SeverityUnspecified: 0.5,
	}
}

const DefaultUnknownSeverityWeight = 0.5

// Input is everything a single calculation reads. The calculator never
// modifies it.
type Input struct {
	Regions           []models.BrainRegion
	SymptomMappings   []models.SymptomNeuralMapping
	DiagnosisMappings []models.DiagnosisNeuralMapping
	Symptoms          []models.Symptom
	Diagnoses         []models.Diagnosis
}

// InputFromCatalog pairs a region roster with the mappings and patient
// records of a catalog.
func InputFromCatalog(regions []models.BrainRegion, c *models.MappingCatalog) Input {
	return Input{
		Regions:           regions,
		SymptomMappings:   c.SymptomMappings,
		DiagnosisMappings: c.DiagnosisMappings,
		Symptoms:          c.Symptoms,
		Diagnoses:         c.Diagnoses,
	}
}

// Calculator is safe for concurrent use.
type Calculator struct {
	log           *zap.Logger
	weights       map[models.DiagnosisSeverity]float64
	unknownWeight float64
}

type Option func(*Calculator)

func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		c.log = logger.OrNop(l)
	}
}

// WithSeverityWeights replaces the diagnosis severity table and the weight
// used for severities missing from it.
func WithSeverityWeights(weights map[models.DiagnosisSeverity]float64, unknown float64) Option {
	return func(c *Calculator) {
		table := make(map[models.DiagnosisSeverity]float64, len(weights))
		for k, v := range weights {
			table[k] = v
		}
		c.weights = table
		c.unknownWeight = unknown
	}
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		log:           zap.NewNop(),
		weights:       DefaultSeverityWeights(),
		unknownWeight: DefaultUnknownSeverityWeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns one score per region in in.Regions. Symptoms are folded
// in before diagnoses, all onto the same accumulators.
func (c *Calculator) Calculate(in Input) (res result.Result[models.ActivationMap]) {
	defer func() {
		if r := recover(); r != nil {
			err := recovered(r)
			c.log.Error("neural activation calculation failed", zap.Error(err))
			res = result.Fail[models.ActivationMap](err)
		}
	}()

	acc := make(models.ActivationMap, len(in.Regions))
	for _, region := range in.Regions {
		acc[region.ID] = 0
	}

	for _, symptom := range in.Symptoms {
		mapping, ok := findSymptomMapping(in.SymptomMappings, symptom)
		if !ok {
			c.log.Debug("no mapping for symptom",
				zap.String("symptom_id", symptom.ID),
				zap.String("symptom_name", symptom.Name))
			continue
		}
		c.fold(acc, mapping.ActivationPatterns, symptom.Severity/10)
	}

	for _, diagnosis := range in.Diagnoses {
		mapping, ok := findDiagnosisMapping(in.DiagnosisMappings, diagnosis)
		if !ok {
			c.log.Debug("no mapping for diagnosis",
				zap.String("diagnosis_id", diagnosis.ID),
				zap.String("diagnosis_name", diagnosis.Name))
			continue
		}
		c.fold(acc, mapping.ActivationPatterns, c.severityWeight(diagnosis.Severity))
	}

	return result.Ok(acc)
}

func (c *Calculator) fold(acc models.ActivationMap, patterns []models.NeuralActivationPattern, factor float64) {
	for _, p := range patterns {
		strength := factor * p.Intensity * p.Confidence
		for _, id := range p.RegionIDs {
			old, known := acc[id]
			if !known {
				c.log.Debug("pattern references unknown region", zap.String("region_id", id))
				continue
			}
			acc[id] = Combine(old, strength)
		}
	}
}

func (c *Calculator) severityWeight(s models.DiagnosisSeverity) float64 {
	if w, ok := c.weights[s]; ok {
		return w
	}
	c.log.Debug("unknown diagnosis severity", zap.String("severity", string(s)))
	return c.unknownWeight
}

// Combine folds an independent signal into an accumulated one:
// min(1, sqrt(a² + b²)).
func Combine(a, b float64) float64 {
	return math.Min(1, math.Hypot(a, b))
}

func findSymptomMapping(mappings []models.SymptomNeuralMapping, s models.Symptom) (models.SymptomNeuralMapping, bool) {
	for _, m := range mappings {
		if matches(m.SymptomID, m.SymptomName, s.ID, s.Name) {
			return m, true
		}
	}
	return models.SymptomNeuralMapping{}, false
}

func findDiagnosisMapping(mappings []models.DiagnosisNeuralMapping, d models.Diagnosis) (models.DiagnosisNeuralMapping, bool) {
	for _, m := range mappings {
		if matches(m.DiagnosisID, m.DiagnosisName, d.ID, d.Name) {
			return m, true
		}
	}
	return models.DiagnosisNeuralMapping{}, false
}

// matches reports whether a mapping refers to a record by id or by name.
// Empty values never match.
func matches(mappingID, mappingName, id, name string) bool {
	return (mappingID != "" && mappingID == id) || (mappingName != "" && mappingName == name)
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%s: %w", failurePrefix, err)
	}
	return fmt.Errorf("%s: %v", failurePrefix, r)
}
