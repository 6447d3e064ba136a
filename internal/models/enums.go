// Package models defines the core data structures of the brain domain model.
// It includes entity definitions, closed enumerations and the value types
// produced by the activation and impact computations.
package models

type Hemisphere string

const (
	HemisphereLeft    Hemisphere = "left"
	HemisphereRight   Hemisphere = "right"
	HemisphereCentral Hemisphere = "central"
)

func Hemispheres() []Hemisphere {
	return []Hemisphere{HemisphereLeft, HemisphereRight, HemisphereCentral}
}

func (h Hemisphere) Valid() bool {
	switch h {
	case HemisphereLeft, HemisphereRight, HemisphereCentral:
		return true
	}
	return false
}

type TissueType string

const (
	TissueGray  TissueType = "gray"
	TissueWhite TissueType = "white"
)

func TissueTypes() []TissueType {
	return []TissueType{TissueGray, TissueWhite}
}

func (t TissueType) Valid() bool {
	switch t {
	case TissueGray, TissueWhite:
		return true
	}
	return false
}

type ConnectionType string

const (
	ConnectionExcitatory ConnectionType = "excitatory"
	ConnectionInhibitory ConnectionType = "inhibitory"
)

func ConnectionTypes() []ConnectionType {
	return []ConnectionType{ConnectionExcitatory, ConnectionInhibitory}
}

func (c ConnectionType) Valid() bool {
	switch c {
	case ConnectionExcitatory, ConnectionInhibitory:
		return true
	}
	return false
}

type Directionality string

const (
	Unidirectional Directionality = "unidirectional"
	Bidirectional  Directionality = "bidirectional"
)

func Directionalities() []Directionality {
	return []Directionality{Unidirectional, Bidirectional}
}

func (d Directionality) Valid() bool {
	switch d {
	case Unidirectional, Bidirectional:
		return true
	}
	return false
}

type ScanType string

const (
	ScanFMRI ScanType = "fMRI"
	ScanMRI  ScanType = "MRI"
	ScanCT   ScanType = "CT"
	ScanPET  ScanType = "PET"
)

func ScanTypes() []ScanType {
	return []ScanType{ScanFMRI, ScanMRI, ScanCT, ScanPET}
}

func (s ScanType) Valid() bool {
	switch s {
	case ScanFMRI, ScanMRI, ScanCT, ScanPET:
		return true
	}
	return false
}

type ProcessingLevel string

const (
	ProcessingRaw        ProcessingLevel = "raw"
	ProcessingFiltered   ProcessingLevel = "filtered"
	ProcessingNormalized ProcessingLevel = "normalized"
	ProcessingAnalyzed   ProcessingLevel = "analyzed"
)

func ProcessingLevels() []ProcessingLevel {
	return []ProcessingLevel{ProcessingRaw, ProcessingFiltered, ProcessingNormalized, ProcessingAnalyzed}
}

func (p ProcessingLevel) Valid() bool {
	switch p {
	case ProcessingRaw, ProcessingFiltered, ProcessingNormalized, ProcessingAnalyzed:
		return true
	}
	return false
}

type EvidenceQuality string

const (
	EvidenceEstablished EvidenceQuality = "established"
	EvidenceProbable    EvidenceQuality = "probable"
	EvidenceTheoretical EvidenceQuality = "theoretical"
)

func (e EvidenceQuality) Valid() bool {
	switch e {
	case EvidenceEstablished, EvidenceProbable, EvidenceTheoretical:
		return true
	}
	return false
}

type TimeScale string

const (
	TimeScaleAcute    TimeScale = "acute"
	TimeScaleSubacute TimeScale = "subacute"
	TimeScaleChronic  TimeScale = "chronic"
)

// ImpactKind is how a treatment changes a region or connection.
type ImpactKind string

const (
	ImpactIncrease  ImpactKind = "increase"
	ImpactDecrease  ImpactKind = "decrease"
	ImpactModulate  ImpactKind = "modulate"
	ImpactNormalize ImpactKind = "normalize"
)

type RiskLevel string

const (
	RiskNone     RiskLevel = "NONE"
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

type Reversibility string

const (
	Reversible          Reversibility = "reversible"
	PartiallyReversible Reversibility = "partially_reversible"
	Irreversible        Reversibility = "irreversible"
)

func (r Reversibility) Valid() bool {
	switch r {
	case Reversible, PartiallyReversible, Irreversible:
		return true
	}
	return false
}

// DiagnosisSeverity is kept open: records from the clinical data service may
// carry values outside the known set.
type DiagnosisSeverity string

const (
	SeverityMild        DiagnosisSeverity = "mild"
	SeverityModerate    DiagnosisSeverity = "moderate"
	SeveritySevere      DiagnosisSeverity = "severe"
	SeverityInRemission DiagnosisSeverity = "in remission"
	SeverityUnspecified DiagnosisSeverity = "unspecified"
)
