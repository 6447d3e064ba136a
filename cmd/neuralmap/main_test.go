package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelDoc = `{
	"id": "model-7",
	"patientId": "patient-42",
	"regions": [
		{
			"id": "r-amygdala-l", "name": "Left Amygdala",
			"position": {"x": -22.5, "y": -4, "z": -18}, "color": "#ff6b6b",
			"connections": ["r-pfc-l"], "activityLevel": 0.62, "isActive": true,
			"hemisphereLocation": "left", "dataConfidence": 0.9, "volume": 1.24, "activity": 0.58
		},
		{
			"id": "r-pfc-l", "name": "Left Prefrontal Cortex",
			"position": {"x": -30, "y": 40, "z": 20}, "color": "#4dabf7",
			"connections": [], "activityLevel": 0.3, "isActive": false,
			"hemisphereLocation": "left", "dataConfidence": 0.75, "volume": 0, "activity": 0.31
		}
	],
	"connections": [],
	"scan": {
		"id": "scan-001", "patientId": "patient-42", "scanDate": "2024-03-18T09:30:00Z",
		"scanType": "fMRI", "resolution": {"x": 1, "y": 1, "z": 1.5},
		"metadata": {}, "dataQualityScore": 0.92
	},
	"timestamp": "2024-03-18T10:00:00Z",
	"version": "2.1.0",
	"processingLevel": "analyzed",
	"lastUpdated": "2024-03-18T10:05:00Z"
}`

const catalogDoc = `{
	"symptomMappings": [
		{"symptomId": "s-anxiety", "symptomName": "Anxiety", "evidenceQuality": "established",
		 "activationPatterns": [{"regionIds": ["r-amygdala-l"], "intensity": 0.8, "confidence": 0.9}]}
	],
	"diagnosisMappings": [
		{"diagnosisId": "d-gad", "diagnosisName": "GAD", "evidenceQuality": "probable",
		 "activationPatterns": [{"regionIds": ["r-amygdala-l", "r-pfc-l"], "intensity": 0.6, "confidence": 0.7}]}
	],
	"treatmentMappings": [
		{"treatmentId": "t-ssri", "treatmentName": "SSRI", "evidenceQuality": "established",
		 "mechanisms": [{"name": "reuptake inhibition", "affectedRegions": ["r-raphe"], "confidenceLevel": 0.75}],
		 "expectedEffects": {
			"decreasedActivity": ["r-amygdala-l"],
			"normalizedConnectivity": [{"sourceId": "r-amygdala-l", "targetId": "r-pfc-l"}]
		 }},
		{"treatmentId": "t-cbt", "treatmentName": "CBT", "evidenceQuality": "probable",
		 "mechanisms": [],
		 "expectedEffects": {"increasedActivity": ["r-pfc-l"]}}
	],
	"symptoms": [{"id": "s-anxiety", "name": "Anxiety", "severity": 7}],
	"diagnoses": [{"id": "d-gad", "name": "GAD", "severity": "moderate"}],
	"treatmentIds": ["t-ssri"]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NEUROTWIN_LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		code, _, stderr := runCmd(t)
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "usage: neuralmap")
	})

	t.Run("unknown command", func(t *testing.T) {
		code, _, stderr := runCmd(t, "simulate")
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, `unknown command "simulate"`)
	})

	t.Run("help", func(t *testing.T) {
		code, stdout, _ := runCmd(t, "help")
		assert.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "commands:")
	})

	t.Run("missing file argument", func(t *testing.T) {
		code, _, stderr := runCmd(t, "activation", writeFile(t, "model.json", modelDoc))
		assert.Equal(t, exitUsage, code)
		assert.Contains(t, stderr, "expected a model file and a catalog file")
	})
}

func TestRun_Validate(t *testing.T) {
	t.Run("valid model is echoed", func(t *testing.T) {
		code, stdout, stderr := runCmd(t, "validate", writeFile(t, "model.json", modelDoc))
		require.Equal(t, exitOK, code, stderr)

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, "model-7", out["id"])
		assert.Len(t, out["regions"], 2)
	})

	t.Run("pretty output is indented", func(t *testing.T) {
		code, stdout, _ := runCmd(t, "validate", "-pretty", writeFile(t, "model.json", modelDoc))
		require.Equal(t, exitOK, code)
		assert.Contains(t, stdout, "\n  \"id\": \"model-7\"")
	})

	t.Run("validation failure names the field", func(t *testing.T) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(modelDoc), &doc))
		doc["regions"].([]any)[1].(map[string]any)["activityLevel"] = 2
		data, err := json.Marshal(doc)
		require.NoError(t, err)

		code, stdout, stderr := runCmd(t, "validate", writeFile(t, "model.json", string(data)))
		assert.Equal(t, exitFail, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "invalid brain model (field regions[1].activityLevel)")
		assert.Contains(t, stderr, "Expected regions[1].activityLevel between 0 and 1")
	})

	t.Run("missing file", func(t *testing.T) {
		code, _, stderr := runCmd(t, "validate", filepath.Join(t.TempDir(), "nope.json"))
		assert.Equal(t, exitFail, code)
		assert.Contains(t, stderr, "read model")
	})
}

func TestRun_Activation(t *testing.T) {
	model := writeFile(t, "model.json", modelDoc)
	catalog := writeFile(t, "catalog.json", catalogDoc)

	code, stdout, stderr := runCmd(t, "activation", model, catalog)
	require.Equal(t, exitOK, code, stderr)

	var scores map[string]float64
	require.NoError(t, json.Unmarshal([]byte(stdout), &scores))
	// sqrt(0.504² + 0.252²)
	assert.InDelta(t, 0.563489, scores["r-amygdala-l"], 1e-6)
	assert.InDelta(t, 0.252, scores["r-pfc-l"], 1e-9)
}

func TestRun_ActivationUsesConfiguredWeights(t *testing.T) {
	t.Setenv("NEUROTWIN_ACTIVATION_SEVERITY_WEIGHTS", "moderate:0")
	model := writeFile(t, "model.json", modelDoc)
	catalog := writeFile(t, "catalog.json", catalogDoc)

	code, stdout, stderr := runCmd(t, "activation", model, catalog)
	require.Equal(t, exitOK, code, stderr)

	var scores map[string]float64
	require.NoError(t, json.Unmarshal([]byte(stdout), &scores))
	assert.InDelta(t, 0.504, scores["r-amygdala-l"], 1e-9)
	assert.Equal(t, 0.0, scores["r-pfc-l"])
}

func TestRun_Impact(t *testing.T) {
	catalog := writeFile(t, "catalog.json", catalogDoc)

	t.Run("catalog treatments", func(t *testing.T) {
		code, stdout, stderr := runCmd(t, "impact", catalog)
		require.Equal(t, exitOK, code, stderr)

		var rating map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &rating))
		assert.Equal(t, "MODERATE", rating["overallSeverity"])
		assert.Equal(t, "4-6 weeks", rating["projectedTimeline"])
		assert.Equal(t, "reversible", rating["reversibility"])
		assert.Len(t, rating["regionImpacts"], 2)
		assert.Len(t, rating["connectionImpacts"], 1)
	})

	t.Run("explicit treatments", func(t *testing.T) {
		code, stdout, stderr := runCmd(t, "impact", "-treatments", "t-cbt, t-missing", catalog)
		require.Equal(t, exitOK, code, stderr)

		var rating map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &rating))
		assert.Len(t, rating["regionImpacts"], 1)
		assert.Empty(t, rating["connectionImpacts"])
		assert.Equal(t, "MODERATE", rating["overallSeverity"])
	})

	t.Run("configured placeholders", func(t *testing.T) {
		t.Setenv("NEUROTWIN_IMPACT_PROJECTED_TIMELINE", "12 weeks")
		code, stdout, stderr := runCmd(t, "impact", catalog)
		require.Equal(t, exitOK, code, stderr)
		assert.Contains(t, stdout, `"projectedTimeline":"12 weeks"`)
	})

	t.Run("invalid catalog", func(t *testing.T) {
		bad := writeFile(t, "bad.json", `{"treatmentMappings": [{"mechanisms": []}]}`)
		code, _, stderr := runCmd(t, "impact", bad)
		assert.Equal(t, exitFail, code)
		assert.Contains(t, stderr, "invalid mapping catalog")
	})
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("NEUROTWIN_LOG_FORMAT", "xml")
	var stdout, stderr bytes.Buffer

	code := run([]string{"validate", "x.json"}, &stdout, &stderr)
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr.String(), "load config")
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitIDs(" a, ,b,"))
	assert.Nil(t, splitIDs(""))
}
