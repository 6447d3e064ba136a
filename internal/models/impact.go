package models

type RegionImpact struct {
	RegionID   string     `json:"regionId"`
	Impact     ImpactKind `json:"impact"`
	Magnitude  float64    `json:"magnitude"`
	Confidence float64    `json:"confidence"`
}

type ConnectionImpact struct {
	SourceID   string     `json:"sourceId"`
	TargetID   string     `json:"targetId"`
	Impact     ImpactKind `json:"impact"`
	Magnitude  float64    `json:"magnitude"`
	Confidence float64    `json:"confidence"`
}

// NeuralImpactRating summarises the combined effect of a set of treatments.
type NeuralImpactRating struct {
	RegionImpacts     []RegionImpact     `json:"regionImpacts"`
	ConnectionImpacts []ConnectionImpact `json:"connectionImpacts"`
	OverallSeverity   RiskLevel          `json:"overallSeverity"`
	Reversibility     Reversibility      `json:"reversibility"`
	ProjectedTimeline string             `json:"projectedTimeline"`
}

// ActivationMap holds one activation score in [0,1] per region id.
type ActivationMap map[string]float64
