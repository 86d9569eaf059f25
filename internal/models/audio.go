package models

// AudioAnalysisResult - результат внешнего анализа голосовой записи
type AudioAnalysisResult struct {
	Transcript     string   `json:"transcript"`
	Language       string   `json:"language,omitempty"`
	CrisisDetected bool     `json:"crisis_detected"`
	Keywords       []string `json:"keywords,omitempty"`
	Confidence     float64  `json:"confidence"`
}
