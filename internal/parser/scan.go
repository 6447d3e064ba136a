package parser

import (
	"time"

	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/result"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func isISODate(s string) bool {
	for _, layout := range isoLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func ValidateBrainScan(value any, fieldPath string) result.Result[models.BrainScan] {
	obj, verr := rootObject(value, fieldPath, "BrainScan")
	if verr != nil {
		return result.Fail[models.BrainScan](verr)
	}

	r := newFieldReader(obj, fieldPath)

	id := r.str("id")
	patientID := r.str("patientId")
	scanDate := r.isoDate("scanDate")

	scanType := r.enum("scanType", scanTypes)

	resolution := nested(r, "resolution", ValidateVector3)
	metadata := r.object("metadata")

	quality := r.unit("dataQualityScore")

	scan := models.BrainScan{
		ScannerModel:     r.optString("scannerModel"),
		ContrastAgent:    r.optString("contrastAgent"),
		Notes:            r.optString("notes"),
		Technician:       r.optString("technician"),
		ProcessingMethod: r.optString("processingMethod"),
	}
	if r.err != nil {
		return result.Fail[models.BrainScan](r.err)
	}

	scan.ID = id
	scan.PatientID = patientID
	scan.ScanDate = scanDate
	scan.ScanType = models.ScanType(scanType)
	scan.Resolution = resolution
	scan.Metadata = metadata
	scan.DataQualityScore = quality
	return result.Ok(scan)
}
