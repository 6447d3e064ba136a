package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/neurotwin/core/internal/models"
)

var ssri = models.TreatmentNeuralMapping{
	TreatmentID:   "t-ssri",
	TreatmentName: "SSRI",
	Mechanisms: []models.TreatmentMechanism{
		{Name: "serotonin reuptake inhibition", AffectedRegions: []string{"r-raphe"}, ConfidenceLevel: 0.6},
	},
	ExpectedEffects: models.TreatmentEffects{
		DecreasedActivity:      []string{"r-amygdala"},
		NormalizedConnectivity: []models.ConnectionPair{{SourceID: "r-amygdala", TargetID: "r-pfc"}},
	},
}

var cbt = models.TreatmentNeuralMapping{
	TreatmentID: "t-cbt",
	Mechanisms: []models.TreatmentMechanism{
		{Name: "cognitive restructuring", AffectedRegions: []string{"r-pfc"}, ConfidenceLevel: 0.9},
	},
	ExpectedEffects: models.TreatmentEffects{
		IncreasedActivity:      []string{"r-pfc"},
		DecreasedActivity:      []string{"r-amygdala"},
		NormalizedConnectivity: []models.ConnectionPair{{SourceID: "r-amygdala", TargetID: "r-pfc"}},
	},
}

func TestRate_SingleTreatment(t *testing.T) {
	res := NewEngine().Rate([]models.TreatmentNeuralMapping{ssri}, []string{"t-ssri"})

	require.True(t, res.IsOk(), "unexpected error: %v", res.Err())
	rating := res.Value()

	assert.Equal(t, []models.RegionImpact{
		{RegionID: "r-amygdala", Impact: models.ImpactDecrease, Magnitude: 0.7, Confidence: 0.8},
		{RegionID: "r-raphe", Impact: models.ImpactModulate, Magnitude: 0.8, Confidence: 0.6},
	}, rating.RegionImpacts)
	assert.Equal(t, []models.ConnectionImpact{
		{SourceID: "r-amygdala", TargetID: "r-pfc", Impact: models.ImpactNormalize, Magnitude: 0.6, Confidence: 0.7},
	}, rating.ConnectionImpacts)
	// mean 0.75
	assert.Equal(t, models.RiskModerate, rating.OverallSeverity)
	assert.Equal(t, "4-6 weeks", rating.ProjectedTimeline)
	assert.Equal(t, models.Reversible, rating.Reversibility)
}

func TestRate_MergesRepeatedKeys(t *testing.T) {
	res := NewEngine().Rate([]models.TreatmentNeuralMapping{ssri, cbt}, []string{"t-ssri", "t-cbt"})
	require.True(t, res.IsOk())
	rating := res.Value()

	require.Len(t, rating.RegionImpacts, 4)
	amygdala := rating.RegionImpacts[0]
	assert.Equal(t, "r-amygdala", amygdala.RegionID)
	assert.Equal(t, models.ImpactDecrease, amygdala.Impact)
	assert.InDelta(t, 0.98995, amygdala.Magnitude, 1e-5)
	assert.InDelta(t, 0.8, amygdala.Confidence, 1e-12)

	assert.Equal(t, "r-raphe", rating.RegionImpacts[1].RegionID)

	// same region, different kinds stay separate
	assert.Equal(t, models.RegionImpact{RegionID: "r-pfc", Impact: models.ImpactIncrease, Magnitude: 0.7, Confidence: 0.8}, rating.RegionImpacts[2])
	assert.Equal(t, models.RegionImpact{RegionID: "r-pfc", Impact: models.ImpactModulate, Magnitude: 0.8, Confidence: 0.9}, rating.RegionImpacts[3])

	require.Len(t, rating.ConnectionImpacts, 1)
	conn := rating.ConnectionImpacts[0]
	assert.InDelta(t, 0.848528, conn.Magnitude, 1e-6)
	assert.InDelta(t, 0.7, conn.Confidence, 1e-12)
}

func TestRate_ConfidenceIsMeanOfOldAndNew(t *testing.T) {
	a := models.TreatmentNeuralMapping{TreatmentID: "a", Mechanisms: []models.TreatmentMechanism{
		{AffectedRegions: []string{"r1"}, ConfidenceLevel: 0.2},
	}}
	b := models.TreatmentNeuralMapping{TreatmentID: "b", Mechanisms: []models.TreatmentMechanism{
		{AffectedRegions: []string{"r1"}, ConfidenceLevel: 1.0},
	}}

	res := NewEngine().Rate([]models.TreatmentNeuralMapping{a, b}, []string{"a", "b"})
	require.True(t, res.IsOk())
	require.Len(t, res.Value().RegionImpacts, 1)
	assert.InDelta(t, 0.6, res.Value().RegionImpacts[0].Confidence, 1e-12)
	assert.Equal(t, 1.0, res.Value().RegionImpacts[0].Magnitude)
	assert.Equal(t, models.RiskHigh, res.Value().OverallSeverity)
}

func TestRate_NoImpacts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewEngine(WithLogger(zap.New(core)))

	res := engine.Rate([]models.TreatmentNeuralMapping{ssri}, []string{"t-unknown"})
	require.True(t, res.IsOk())

	rating := res.Value()
	assert.Empty(t, rating.RegionImpacts)
	assert.NotNil(t, rating.RegionImpacts)
	assert.Empty(t, rating.ConnectionImpacts)
	assert.Equal(t, models.RiskNone, rating.OverallSeverity)
	assert.Equal(t, 1, logs.FilterMessage("no mapping for treatment").Len())

	res = engine.Rate(nil, nil)
	require.True(t, res.IsOk())
	assert.Equal(t, models.RiskNone, res.Value().OverallSeverity)
}

func TestRate_SeverityThresholds(t *testing.T) {
	cases := []struct {
		name      string
		magnitude float64
		want      models.RiskLevel
	}{
		{"above high", 0.85, models.RiskHigh},
		{"exactly high", 0.8, models.RiskModerate},
		{"moderate", 0.6, models.RiskModerate},
		{"exactly moderate", 0.5, models.RiskLow},
		{"low", 0.3, models.RiskLow},
		{"exactly low", 0.2, models.RiskNone},
		{"none", 0.1, models.RiskNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := NewEngine(WithWeights(Weights{ActivityMagnitude: tc.magnitude, ActivityConfidence: 1}))
			m := models.TreatmentNeuralMapping{TreatmentID: "t", ExpectedEffects: models.TreatmentEffects{
				IncreasedActivity: []string{"r1"},
			}}

			res := engine.Rate([]models.TreatmentNeuralMapping{m}, []string{"t"})
			require.True(t, res.IsOk())
			assert.Equal(t, tc.want, res.Value().OverallSeverity)
		})
	}
}

func TestRate_CustomThresholdsAndPlaceholders(t *testing.T) {
	engine := NewEngine(
		WithThresholds(Thresholds{High: 0.9, Moderate: 0.75, Low: 0.1}),
		WithProjectedTimeline("8-12 weeks"),
		WithReversibility(models.PartiallyReversible),
	)

	res := engine.Rate([]models.TreatmentNeuralMapping{ssri}, []string{"t-ssri"})
	require.True(t, res.IsOk())

	rating := res.Value()
	assert.Equal(t, models.RiskLow, rating.OverallSeverity)
	assert.Equal(t, "8-12 weeks", rating.ProjectedTimeline)
	assert.Equal(t, models.PartiallyReversible, rating.Reversibility)
}

func TestRate_ConnectionsDoNotAffectSeverity(t *testing.T) {
	m := models.TreatmentNeuralMapping{TreatmentID: "t", ExpectedEffects: models.TreatmentEffects{
		NormalizedConnectivity: []models.ConnectionPair{{SourceID: "a", TargetID: "b"}, {SourceID: "b", TargetID: "a"}},
	}}

	res := NewEngine().Rate([]models.TreatmentNeuralMapping{m}, []string{"t"})
	require.True(t, res.IsOk())
	assert.Len(t, res.Value().ConnectionImpacts, 2)
	assert.Equal(t, models.RiskNone, res.Value().OverallSeverity)
}

func TestRate_RecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core, zap.Hooks(func(e zapcore.Entry) error {
		if e.Level == zapcore.DebugLevel {
			panic("lookup exploded")
		}
		return nil
	}))

	res := NewEngine(WithLogger(log)).Rate(nil, []string{"t-missing"})

	require.False(t, res.IsOk())
	assert.Equal(t, "Failed to calculate treatment impact: lookup exploded", res.Err().Error())
	assert.Nil(t, res.Value().RegionImpacts)
	assert.Equal(t, 1, logs.FilterMessage("treatment impact calculation failed").Len())
}
