package voice

import (
	"testing"

	"github.com/shenikar/safety_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDetectCrisis(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		crisis     bool
		keywords   []string
	}{
		{"empty", "   ", false, nil},
		{"calm", "I am walking home now", false, nil},
		{"single word with punctuation", "Help! Somebody call the police.", true, []string{"help", "police"}},
		{"phrase", "please LET ME GO", true, []string{"let me go"}},
		{"word inside another word", "nothing happened, helpful stranger", false, nil},
		{"pidgin", "abeg ole dey here", true, []string{"ole", "abeg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DetectCrisis(tt.transcript)
			assert.Equal(t, tt.crisis, v.IsCrisis)
			assert.Equal(t, tt.keywords, v.Keywords)
		})
	}
}

func TestDetectCrisis_Confidence(t *testing.T) {
	v := DetectCrisis("help stop")
	assert.InDelta(t, 2.0/14.0, v.Confidence, 1e-9)
}

func TestNormalize(t *testing.T) {
	got := Normalize(models.AudioAnalysisResult{Transcript: "leave me alone, help"})
	assert.True(t, got.CrisisDetected)
	assert.Equal(t, []string{"help", "leave me alone"}, got.Keywords)

	// готовый вердикт не пересчитывается
	supplied := models.AudioAnalysisResult{Transcript: "all good", CrisisDetected: true, Confidence: 0.9}
	assert.Equal(t, supplied, Normalize(supplied))

	assert.Equal(t, "keywords: help, leave me alone", Describe(got))
	assert.Empty(t, Describe(models.AudioAnalysisResult{}))
}
