package models

// ConnectivityDelta is the expected change of a connection's strength while
// an activation pattern is in effect.
type ConnectivityDelta struct {
	SourceID string  `json:"sourceId"`
	TargetID string  `json:"targetId"`
	Delta    float64 `json:"delta"`
}

type NeuralActivationPattern struct {
	RegionIDs          []string            `json:"regionIds"`
	Intensity          float64             `json:"intensity"`
	Confidence         float64             `json:"confidence"`
	ConnectivityDeltas []ConnectivityDelta `json:"connectivityDeltas,omitempty"`
	TimeScale          TimeScale           `json:"timeScale,omitempty"`
}

type SymptomNeuralMapping struct {
	SymptomID          string                    `json:"symptomId"`
	SymptomName        string                    `json:"symptomName"`
	Category           string                    `json:"category,omitempty"`
	EvidenceQuality    EvidenceQuality           `json:"evidenceQuality"`
	ActivationPatterns []NeuralActivationPattern `json:"activationPatterns"`
}

type DiagnosisNeuralMapping struct {
	DiagnosisID        string                    `json:"diagnosisId"`
	DiagnosisName      string                    `json:"diagnosisName"`
	Codes              []string                  `json:"codes,omitempty"`
	EvidenceQuality    EvidenceQuality           `json:"evidenceQuality"`
	ActivationPatterns []NeuralActivationPattern `json:"activationPatterns"`
}

type TreatmentMechanism struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	AffectedRegions []string `json:"affectedRegions"`
	ConfidenceLevel float64  `json:"confidenceLevel"`
}

type ConnectionPair struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}

type TreatmentEffects struct {
	IncreasedActivity      []string         `json:"increasedActivity,omitempty"`
	DecreasedActivity      []string         `json:"decreasedActivity,omitempty"`
	NormalizedConnectivity []ConnectionPair `json:"normalizedConnectivity,omitempty"`
}

type TreatmentNeuralMapping struct {
	TreatmentID        string                    `json:"treatmentId"`
	TreatmentName      string                    `json:"treatmentName"`
	TreatmentType      string                    `json:"treatmentType,omitempty"`
	EvidenceQuality    EvidenceQuality           `json:"evidenceQuality"`
	Mechanisms         []TreatmentMechanism      `json:"mechanisms"`
	ExpectedEffects    TreatmentEffects          `json:"expectedEffects"`
	ActivationPatterns []NeuralActivationPattern `json:"activationPatterns,omitempty"`
}

// Symptom is an active symptom from a patient record. Severity is on a 0-10 scale.
type Symptom struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Severity float64 `json:"severity"`
}

type Diagnosis struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Severity DiagnosisSeverity `json:"severity"`
}

// MappingCatalog bundles the reference mappings supplied by the clinical
// data service together with a patient's active records.
type MappingCatalog struct {
	SymptomMappings   []SymptomNeuralMapping   `json:"symptomMappings"`
	DiagnosisMappings []DiagnosisNeuralMapping `json:"diagnosisMappings"`
	TreatmentMappings []TreatmentNeuralMapping `json:"treatmentMappings"`
	Symptoms          []Symptom                `json:"symptoms"`
	Diagnoses         []Diagnosis              `json:"diagnoses"`
	TreatmentIDs      []string                 `json:"treatmentIds"`
}
