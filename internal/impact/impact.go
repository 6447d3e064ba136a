// Package impact rates the combined effect of a set of treatments on brain
// regions and connections.
package impact

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/neurotwin/core/internal/activation"
	"github.com/neurotwin/core/internal/logger"
	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/result"
)

const failurePrefix = "Failed to calculate treatment impact"

// Weights are the magnitude and confidence assigned to each effect source.
// Mechanisms carry their own confidence.
type Weights struct {
	ActivityMagnitude      float64
	ActivityConfidence     float64
	ConnectivityMagnitude  float64
	ConnectivityConfidence float64
	MechanismMagnitude     float64
}

// Thresholds are exclusive lower bounds on the mean region magnitude.
type Thresholds struct {
	High     float64
	Moderate float64
	Low      float64
}

var (
	DefaultWeights = Weights{
		ActivityMagnitude:      0.7,
		ActivityConfidence:     0.8,
		ConnectivityMagnitude:  0.6,
		ConnectivityConfidence: 0.7,
		MechanismMagnitude:     0.8,
	}
	DefaultThresholds = Thresholds{High: 0.8, Moderate: 0.5, Low: 0.2}
)

const (
	DefaultProjectedTimeline = "4-6 weeks"
	DefaultReversibility     = models.Reversible
)

// Engine is safe for concurrent use.
type Engine struct {
	log           *zap.Logger
	weights       Weights
	thresholds    Thresholds
	timeline      string
	reversibility models.Reversibility
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.log = logger.OrNop(l)
	}
}

func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// WithProjectedTimeline sets the timeline reported with every rating.
func WithProjectedTimeline(timeline string) Option {
	return func(e *Engine) {
		e.timeline = timeline
	}
}

func WithReversibility(r models.Reversibility) Option {
	return func(e *Engine) {
		e.reversibility = r
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log:           zap.NewNop(),
		weights:       DefaultWeights,
		thresholds:    DefaultThresholds,
		timeline:      DefaultProjectedTimeline,
		reversibility: DefaultReversibility,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rate merges the expected effects of every requested treatment that has a
// mapping. Ids without a mapping are skipped.
func (e *Engine) Rate(mappings []models.TreatmentNeuralMapping, treatmentIDs []string) (res result.Result[models.NeuralImpactRating]) {
	defer func() {
		if r := recover(); r != nil {
			err := recovered(r)
			e.log.Error("treatment impact calculation failed", zap.Error(err))
			res = result.Fail[models.NeuralImpactRating](err)
		}
	}()

	byID := make(map[string]models.TreatmentNeuralMapping, len(mappings))
	for _, m := range mappings {
		if _, dup := byID[m.TreatmentID]; !dup {
			byID[m.TreatmentID] = m
		}
	}

	acc := newAccumulator()
	w := e.weights
	for _, id := range treatmentIDs {
		m, ok := byID[id]
		if !ok {
			e.log.Debug("no mapping for treatment", zap.String("treatment_id", id))
			continue
		}

		for _, region := range m.ExpectedEffects.IncreasedActivity {
			acc.region(region, models.ImpactIncrease, w.ActivityMagnitude, w.ActivityConfidence)
		}
		for _, region := range m.ExpectedEffects.DecreasedActivity {
			acc.region(region, models.ImpactDecrease, w.ActivityMagnitude, w.ActivityConfidence)
		}
		for _, pair := range m.ExpectedEffects.NormalizedConnectivity {
			acc.connection(pair, models.ImpactNormalize, w.ConnectivityMagnitude, w.ConnectivityConfidence)
		}
		for _, mech := range m.Mechanisms {
			for _, region := range mech.AffectedRegions {
				acc.region(region, models.ImpactModulate, w.MechanismMagnitude, mech.ConfidenceLevel)
			}
		}
	}

	rating := models.NeuralImpactRating{
		RegionImpacts:     acc.regions,
		ConnectionImpacts: acc.connections,
		OverallSeverity:   e.severity(acc.regions),
		Reversibility:     e.reversibility,
		ProjectedTimeline: e.timeline,
	}
	return result.Ok(rating)
}

// severity maps the mean region magnitude onto a risk level.
func (e *Engine) severity(impacts []models.RegionImpact) models.RiskLevel {
	if len(impacts) == 0 {
		return models.RiskNone
	}

	var sum float64
	for _, ri := range impacts {
		sum += ri.Magnitude
	}
	mean := sum / float64(len(impacts))

	switch {
	case mean > e.thresholds.High:
		return models.RiskHigh
	case mean > e.thresholds.Moderate:
		return models.RiskModerate
	case mean > e.thresholds.Low:
		return models.RiskLow
	default:
		return models.RiskNone
	}
}

type regionKey struct {
	id   string
	kind models.ImpactKind
}

type connectionKey struct {
	source, target string
	kind           models.ImpactKind
}

// accumulator keeps impacts in first-seen order and merges repeats in place.
type accumulator struct {
	regions     []models.RegionImpact
	connections []models.ConnectionImpact
	regionIdx   map[regionKey]int
	connIdx     map[connectionKey]int
}

func newAccumulator() *accumulator {
	return &accumulator{
		regions:     []models.RegionImpact{},
		connections: []models.ConnectionImpact{},
		regionIdx:   map[regionKey]int{},
		connIdx:     map[connectionKey]int{},
	}
}

func (a *accumulator) region(id string, kind models.ImpactKind, magnitude, confidence float64) {
	key := regionKey{id: id, kind: kind}
	if i, ok := a.regionIdx[key]; ok {
		ri := &a.regions[i]
		ri.Magnitude, ri.Confidence = merge(ri.Magnitude, ri.Confidence, magnitude, confidence)
		return
	}
	a.regionIdx[key] = len(a.regions)
	a.regions = append(a.regions, models.RegionImpact{
		RegionID:   id,
		Impact:     kind,
		Magnitude:  magnitude,
		Confidence: confidence,
	})
}

func (a *accumulator) connection(pair models.ConnectionPair, kind models.ImpactKind, magnitude, confidence float64) {
	key := connectionKey{source: pair.SourceID, target: pair.TargetID, kind: kind}
	if i, ok := a.connIdx[key]; ok {
		ci := &a.connections[i]
		ci.Magnitude, ci.Confidence = merge(ci.Magnitude, ci.Confidence, magnitude, confidence)
		return
	}
	a.connIdx[key] = len(a.connections)
	a.connections = append(a.connections, models.ConnectionImpact{
		SourceID:   pair.SourceID,
		TargetID:   pair.TargetID,
		Impact:     kind,
		Magnitude:  magnitude,
		Confidence: confidence,
	})
}

func merge(oldMag, oldConf, newMag, newConf float64) (float64, float64) {
	return activation.Combine(oldMag, newMag), (oldConf + newConf) / 2
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%s: %w", failurePrefix, err)
	}
	return fmt.Errorf("%s: %v", failurePrefix, r)
}
