// Package voice распознает кризисные фразы в расшифровке голосовой записи.
package voice

import (
	"strings"
	"unicode"

	"github.com/shenikar/safety_alert_system/internal/models"
)

// CrisisKeywords - слова и фразы, указывающие на угрозу
var CrisisKeywords = []string{
	"help",
	"stop",
	"no",
	"leave me alone",
	"let me go",
	"thief",
	"robber",
	"kidnap",
	"rape",
	"assault",
	"police",
	"emergency",
	"ole",
	"abeg",
}

// Verdict - результат поиска ключевых слов
type Verdict struct {
	IsCrisis   bool
	Keywords   []string
	Confidence float64
}

// DetectCrisis ищет ключевые слова: одиночные как целые слова, фразы как подстроки
func DetectCrisis(transcript string) Verdict {
	if strings.TrimSpace(transcript) == "" {
		return Verdict{}
	}

	lower := strings.ToLower(transcript)
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	}) {
		words[w] = struct{}{}
	}

	var found []string
	for _, kw := range CrisisKeywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(lower, kw) {
				found = append(found, kw)
			}
			continue
		}
		if _, ok := words[kw]; ok {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return Verdict{}
	}

	return Verdict{
		IsCrisis:   true,
		Keywords:   found,
		Confidence: float64(len(found)) / float64(len(CrisisKeywords)),
	}
}

// Normalize дополняет результат анализа, пришедший без вердикта.
// Вердикт, уже выставленный анализатором, не пересчитывается.
func Normalize(r models.AudioAnalysisResult) models.AudioAnalysisResult {
	if r.CrisisDetected || len(r.Keywords) > 0 || r.Transcript == "" {
		return r
	}
	v := DetectCrisis(r.Transcript)
	r.CrisisDetected = v.IsCrisis
	r.Keywords = v.Keywords
	r.Confidence = v.Confidence
	return r
}

// Describe формирует текст для журнала оператора
func Describe(r models.AudioAnalysisResult) string {
	if len(r.Keywords) == 0 {
		return ""
	}
	return "keywords: " + strings.Join(r.Keywords, ", ")
}
