package parser

import "github.com/neurotwin/core/internal/verify"

// The Is* predicates answer whether ValidateX would accept a value without
// building paths, errors or copies. They encode the same rules as the
// validators, so IsX(v) implies ValidateX(v) succeeds.

func isUnit(value any) bool {
	n, ok := verify.Number(value)
	return ok && inUnitRange(n)
}

func isNonNegative(value any) bool {
	n, ok := verify.Number(value)
	return ok && n >= 0
}

func isISODateString(value any) bool {
	s, ok := value.(string)
	return ok && isISODate(s)
}

func isOneOf(allowed []string) verify.Guard {
	return verify.IsOneOf(allowed...)
}

var (
	vector3Shape = verify.IsObjectWithProperties(map[string]verify.Guard{
		"x": verify.IsNumber,
		"y": verify.IsNumber,
		"z": verify.IsNumber,
	})

	brainRegionShape = verify.IsObjectWithProperties(map[string]verify.Guard{
		"id":                   verify.IsString,
		"name":                 verify.IsString,
		"color":                verify.IsString,
		"hemisphereLocation":   isOneOf(hemispheres),
		"position":             vector3Shape,
		"connections":          isJSONArrayOf(verify.IsString),
		"activityLevel":        isUnit,
		"dataConfidence":       isUnit,
		"volume":               isNonNegative,
		"activity":             isUnit,
		"isActive":             verify.IsBoolean,
		"volumeMl":             verify.IsOptional(verify.IsNumber),
		"riskFactor":           verify.IsOptional(isUnit),
		"clinicalSignificance": verify.IsOptional(verify.IsString),
		"tissueType":           verify.IsOptional(isOneOf(tissueTypes)),
	})

	neuralConnectionShape = verify.IsObjectWithProperties(map[string]verify.Guard{
		"id":             verify.IsString,
		"sourceId":       verify.IsString,
		"targetId":       verify.IsString,
		"type":           isOneOf(connectionTypes),
		"directionality": isOneOf(directionalities),
		"strength":       isUnit,
		"activityLevel":  isUnit,
		"dataConfidence": isUnit,
		"pathwayLength":  verify.IsOptional(verify.IsNumber),
	})

	brainScanShape = verify.IsObjectWithProperties(map[string]verify.Guard{
		"id":               verify.IsString,
		"patientId":        verify.IsString,
		"scanDate":         isISODateString,
		"scanType":         isOneOf(scanTypes),
		"resolution":       vector3Shape,
		"metadata":         verify.IsObject,
		"dataQualityScore": isUnit,
		"scannerModel":     verify.IsOptional(verify.IsString),
		"contrastAgent":    verify.IsOptional(verify.IsString),
		"notes":            verify.IsOptional(verify.IsString),
		"technician":       verify.IsOptional(verify.IsString),
		"processingMethod": verify.IsOptional(verify.IsString),
	})

	brainModelShape = verify.IsObjectWithProperties(map[string]verify.Guard{
		"id":               verify.IsString,
		"patientId":        verify.IsString,
		"timestamp":        verify.IsString,
		"version":          verify.IsString,
		"lastUpdated":      verify.IsString,
		"processingLevel":  isOneOf(processingLevels),
		"scan":             brainScanShape,
		"regions":          isJSONArrayOf(brainRegionShape),
		"connections":      isJSONArrayOf(neuralConnectionShape),
		"algorithmVersion": verify.IsOptional(verify.IsString),
	})
)

// isJSONArrayOf only accepts decoded JSON arrays, matching what the
// validators read.
func isJSONArrayOf(guard verify.Guard) verify.Guard {
	each := verify.IsArrayOf(guard)
	return func(value any) bool {
		_, ok := value.([]any)
		return ok && each(value)
	}
}

// conforms reports whether value, once normalized, satisfies shape. Values
// that cannot be normalized never conform.
func conforms(shape verify.Guard, value any) bool {
	normalized, err := normalize(value)
	return err == nil && shape(normalized)
}

func IsVector3(value any) bool {
	return conforms(vector3Shape, value)
}

func IsBrainRegion(value any) bool {
	return conforms(brainRegionShape, value)
}

func IsNeuralConnection(value any) bool {
	return conforms(neuralConnectionShape, value)
}

func IsBrainScan(value any) bool {
	return conforms(brainScanShape, value)
}

func IsBrainModel(value any) bool {
	return conforms(brainModelShape, value)
}
