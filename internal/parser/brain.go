// Package parser provides utilities for parsing and transforming input data.
// It turns untyped documents into validated brain domain entities, reporting
// the first violation with its fully qualified field path.
package parser

import (
	"github.com/neurotwin/core/internal/models"
	"github.com/neurotwin/core/internal/result"
)

var (
	hemispheres      = enumValues(models.Hemispheres())
	tissueTypes      = enumValues(models.TissueTypes())
	connectionTypes  = enumValues(models.ConnectionTypes())
	directionalities = enumValues(models.Directionalities())
	scanTypes        = enumValues(models.ScanTypes())
	processingLevels = enumValues(models.ProcessingLevels())
)

func ValidateVector3(value any, fieldPath string) result.Result[models.Vector3] {
	obj, verr := rootObject(value, fieldPath, "Vector3")
	if verr != nil {
		return result.Fail[models.Vector3](verr)
	}

	r := newFieldReader(obj, fieldPath)
	v := models.Vector3{
		X: r.number("x"),
		Y: r.number("y"),
		Z: r.number("z"),
	}
	if r.err != nil {
		return result.Fail[models.Vector3](r.err)
	}
	return result.Ok(v)
}

func ValidateBrainRegion(value any, fieldPath string) result.Result[models.BrainRegion] {
	obj, verr := rootObject(value, fieldPath, "BrainRegion")
	if verr != nil {
		return result.Fail[models.BrainRegion](verr)
	}

	r := newFieldReader(obj, fieldPath)

	id := r.str("id")
	name := r.str("name")
	color := r.str("color")

	hemisphere := r.enum("hemisphereLocation", hemispheres)

	position := nested(r, "position", ValidateVector3)

	connections := r.stringList("connections")

	activityLevel := r.unit("activityLevel")
	dataConfidence := r.unit("dataConfidence")
	volume := r.nonNegative("volume")
	activity := r.unit("activity")

	isActive := r.boolean("isActive")

	volumeMl := r.optNumber("volumeMl")
	riskFactor := r.optUnit("riskFactor")
	significance := r.optString("clinicalSignificance")
	tissue := r.optEnum("tissueType", tissueTypes)

	if r.err != nil {
		return result.Fail[models.BrainRegion](r.err)
	}

	region := models.BrainRegion{
		ID:                   id,
		Name:                 name,
		Position:             position,
		Color:                color,
		Connections:          connections,
		ActivityLevel:        activityLevel,
		IsActive:             isActive,
		HemisphereLocation:   models.Hemisphere(hemisphere),
		DataConfidence:       dataConfidence,
		Volume:               volume,
		Activity:             activity,
		VolumeMl:             volumeMl,
		RiskFactor:           riskFactor,
		ClinicalSignificance: significance,
	}
	if tissue != nil {
		t := models.TissueType(*tissue)
		region.TissueType = &t
	}
	return result.Ok(region)
}

func ValidateNeuralConnection(value any, fieldPath string) result.Result[models.NeuralConnection] {
	obj, verr := rootObject(value, fieldPath, "NeuralConnection")
	if verr != nil {
		return result.Fail[models.NeuralConnection](verr)
	}

	r := newFieldReader(obj, fieldPath)

	id := r.str("id")
	sourceID := r.str("sourceId")
	targetID := r.str("targetId")

	connType := r.enum("type", connectionTypes)
	directionality := r.enum("directionality", directionalities)

	strength := r.unit("strength")
	activityLevel := r.unit("activityLevel")
	dataConfidence := r.unit("dataConfidence")

	pathwayLength := r.optNumber("pathwayLength")

	if r.err != nil {
		return result.Fail[models.NeuralConnection](r.err)
	}

	return result.Ok(models.NeuralConnection{
		ID:             id,
		SourceID:       sourceID,
		TargetID:       targetID,
		Strength:       strength,
		Type:           models.ConnectionType(connType),
		Directionality: models.Directionality(directionality),
		ActivityLevel:  activityLevel,
		DataConfidence: dataConfidence,
		PathwayLength:  pathwayLength,
	})
}
