package parser

import (
	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/result"
)

// ValidateBrainModel validates a complete model, recursing into the scan,
// every region and every connection. Connection endpoints are not checked
// against region ids.
func ValidateBrainModel(value any, fieldPath string) result.Result[models.BrainModel] {
	obj, verr := rootObject(value, fieldPath, "BrainModel")
	if verr != nil {
		return result.Fail[models.BrainModel](verr)
	}

	r := newFieldReader(obj, fieldPath)

	id := r.str("id")
	patientID := r.str("patientId")
	timestamp := r.str("timestamp")
	version := r.str("version")
	lastUpdated := r.str("lastUpdated")

	level := r.enum("processingLevel", processingLevels)

	scan := nested(r, "scan", ValidateBrainScan)

	regions := arrayOf(r, "regions", ValidateBrainRegion)
	connections := arrayOf(r, "connections", ValidateNeuralConnection)

	algorithmVersion := r.optString("algorithmVersion")

	if r.err != nil {
		return result.Fail[models.BrainModel](r.err)
	}

	return result.Ok(models.BrainModel{
		ID:               id,
		PatientID:        patientID,
		Regions:          regions,
		Connections:      connections,
		Scan:             scan,
		Timestamp:        timestamp,
		Version:          version,
		ProcessingLevel:  models.ProcessingLevel(level),
		LastUpdated:      lastUpdated,
		AlgorithmVersion: algorithmVersion,
	})
}
