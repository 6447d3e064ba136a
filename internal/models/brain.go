// Package models defines the core data structures of the brain domain model.
// It includes entity definitions, closed enumerations and the value types
// produced by the activation and impact computations.
package models

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BrainRegion struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Position           Vector3    `json:"position"`
	Color              string     `json:"color"`
	Connections        []string   `json:"connections"`
	ActivityLevel      float64    `json:"activityLevel"`
	IsActive           bool       `json:"isActive"`
	HemisphereLocation Hemisphere `json:"hemisphereLocation"`
	DataConfidence     float64    `json:"dataConfidence"`
	Volume             float64    `json:"volume"`
	Activity           float64    `json:"activity"`

	VolumeMl             *float64    `json:"volumeMl,omitempty"`
	RiskFactor           *float64    `json:"riskFactor,omitempty"`
	ClinicalSignificance *string     `json:"clinicalSignificance,omitempty"`
	TissueType           *TissueType `json:"tissueType,omitempty"`
}

type NeuralConnection struct {
	ID             string         `json:"id"`
	SourceID       string         `json:"sourceId"`
	TargetID       string         `json:"targetId"`
	Strength       float64        `json:"strength"`
	Type           ConnectionType `json:"type"`
	Directionality Directionality `json:"directionality"`
	ActivityLevel  float64        `json:"activityLevel"`
	DataConfidence float64        `json:"dataConfidence"`
	PathwayLength  *float64       `json:"pathwayLength,omitempty"`
}

type BrainScan struct {
	ID               string         `json:"id"`
	PatientID        string         `json:"patientId"`
	ScanDate         string         `json:"scanDate"`
	ScanType         ScanType       `json:"scanType"`
	Resolution       Vector3        `json:"resolution"`
	Metadata         map[string]any `json:"metadata"`
	DataQualityScore float64        `json:"dataQualityScore"`

	ScannerModel     *string `json:"scannerModel,omitempty"`
	ContrastAgent    *string `json:"contrastAgent,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	Technician       *string `json:"technician,omitempty"`
	ProcessingMethod *string `json:"processingMethod,omitempty"`
}

// BrainModel is a patient's reconstructed brain. Connection endpoints are not
// required to reference ids present in Regions.
type BrainModel struct {
	ID               string             `json:"id"`
	PatientID        string             `json:"patientId"`
	Regions          []BrainRegion      `json:"regions"`
	Connections      []NeuralConnection `json:"connections"`
	Scan             BrainScan          `json:"scan"`
	Timestamp        string             `json:"timestamp"`
	Version          string             `json:"version"`
	ProcessingLevel  ProcessingLevel    `json:"processingLevel"`
	LastUpdated      string             `json:"lastUpdated"`
	AlgorithmVersion *string            `json:"algorithmVersion,omitempty"`
}

// RegionByID returns the region with the given id.
func (m *BrainModel) RegionByID(id string) (BrainRegion, bool) {
	for _, r := range m.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return BrainRegion{}, false
}
