package parser

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const regionJSON = `{
	"id": "r-amygdala-l",
	"name": "Left Amygdala",
	"position": {"x": -22.5, "y": -4, "z": -18},
	"color": "#ff6b6b",
	"connections": ["r-pfc-l", "r-hippocampus-l"],
	"activityLevel": 0.62,
	"isActive": true,
	"hemisphereLocation": "left",
	"dataConfidence": 0.9,
	"volume": 1.24,
	"activity": 0.58
}`

const connectionJSON = `{
	"id": "c-amy-pfc",
	"sourceId": "r-amygdala-l",
	"targetId": "r-pfc-l",
	"strength": 0.7,
	"type": "inhibitory",
	"directionality": "bidirectional",
	"activityLevel": 0.4,
	"dataConfidence": 0.85
}`

const scanJSON = `{
	"id": "scan-001",
	"patientId": "patient-42",
	"scanDate": "2024-03-18T09:30:00Z",
	"scanType": "fMRI",
	"resolution": {"x": 1, "y": 1, "z": 1.5},
	"metadata": {"fieldStrength": "3T", "sequence": {"tr": 2000}},
	"dataQualityScore": 0.92
}`

func modelJSON() string {
	return `{
		"id": "model-7",
		"patientId": "patient-42",
		"regions": [` + regionJSON + `, {
			"id": "r-pfc-l",
			"name": "Left Prefrontal Cortex",
			"position": {"x": -30, "y": 40, "z": 20},
			"color": "#4dabf7",
			"connections": [],
			"activityLevel": 0.3,
			"isActive": false,
			"hemisphereLocation": "left",
			"dataConfidence": 0.75,
			"volume": 0,
			"activity": 0.31,
			"tissueType": "gray",
			"riskFactor": 0.2
		}],
		"connections": [` + connectionJSON + `],
		"scan": ` + scanJSON + `,
		"timestamp": "2024-03-18T10:00:00Z",
		"version": "2.1.0",
		"processingLevel": "analyzed",
		"lastUpdated": "2024-03-18T10:05:00Z"
	}`
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	return out
}

// at returns the object reached by following keys and indices from root.
func at(t *testing.T, root map[string]any, steps ...any) map[string]any {
	t.Helper()
	var cur any = root
	for _, step := range steps {
		switch s := step.(type) {
		case string:
			cur = cur.(map[string]any)[s]
		case int:
			cur = cur.([]any)[s]
		}
	}
	obj, ok := cur.(map[string]any)
	require.True(t, ok)
	return obj
}
