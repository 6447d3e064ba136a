package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neurotwin/core/internal/models"
)

// ParseBrainModel decodes a JSON document and validates it as a BrainModel.
// Validation failures are returned as *ValidationError.
func ParseBrainModel(data []byte) (*models.BrainModel, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty brain model data")
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal brain model: %w", err)
	}

	model, err := ValidateBrainModel(raw, "").Unwrap()
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// ParseMappingCatalog decodes the mapping catalogue and patient records
// supplied by the clinical data service.
func ParseMappingCatalog(data []byte) (*models.MappingCatalog, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty mapping catalog data")
	}

	var catalog models.MappingCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal mapping catalog: %w", err)
	}

	for i, m := range catalog.SymptomMappings {
		if m.SymptomID == "" && m.SymptomName == "" {
			return nil, fmt.Errorf("symptomMappings[%d] has neither symptomId nor symptomName", i)
		}
		if err := checkMapping(m.EvidenceQuality, m.ActivationPatterns, fmt.Sprintf("symptomMappings[%d]", i)); err != nil {
			return nil, err
		}
	}

	for i, m := range catalog.DiagnosisMappings {
		if m.DiagnosisID == "" && m.DiagnosisName == "" {
			return nil, fmt.Errorf("diagnosisMappings[%d] has neither diagnosisId nor diagnosisName", i)
		}
		if err := checkMapping(m.EvidenceQuality, m.ActivationPatterns, fmt.Sprintf("diagnosisMappings[%d]", i)); err != nil {
			return nil, err
		}
	}

	for i, m := range catalog.TreatmentMappings {
		if m.TreatmentID == "" {
			return nil, fmt.Errorf("treatmentMappings[%d] is missing treatmentId", i)
		}
		if err := checkMapping(m.EvidenceQuality, m.ActivationPatterns, fmt.Sprintf("treatmentMappings[%d]", i)); err != nil {
			return nil, err
		}
		for j, mech := range m.Mechanisms {
			if !inUnitRange(mech.ConfidenceLevel) {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("treatmentMappings[%d].mechanisms[%d].confidenceLevel", i, j),
					Message: fmt.Sprintf("Expected treatmentMappings[%d].mechanisms[%d].confidenceLevel between 0 and 1", i, j),
				}
			}
		}
	}

	return &catalog, nil
}

var evidenceQualities = []string{
	string(models.EvidenceEstablished),
	string(models.EvidenceProbable),
	string(models.EvidenceTheoretical),
}

// checkMapping enforces the ranges the calculators rely on. A missing
// evidenceQuality is tolerated.
func checkMapping(quality models.EvidenceQuality, patterns []models.NeuralActivationPattern, path string) error {
	if quality != "" && !quality.Valid() {
		return invalid(path+".evidenceQuality", "to be one of [%s]", strings.Join(evidenceQualities, ", "))
	}
	for i, p := range patterns {
		base := indexPath(path+".activationPatterns", i)
		if !inUnitRange(p.Intensity) {
			return invalid(base+".intensity", "between 0 and 1")
		}
		if !inUnitRange(p.Confidence) {
			return invalid(base+".confidence", "between 0 and 1")
		}
	}
	return nil
}
