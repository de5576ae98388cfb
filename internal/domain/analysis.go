package domain

// UnitResults is the aggregated input of the performance analyzer.
type UnitResults struct {
	UnitID        string
	UnitName      string
	TotalScore    int
	MaxScore      int
	ChapterScores []ChapterScore
}

// ChapterScore is one chapter's score within a unit attempt.
type ChapterScore struct {
	ChapterID    string
	ChapterName  string
	Score        int
	MaxScore     int
	WrongAnswers []string
}

// ChapterBreakdown is the analyzer's per-chapter classification.
type ChapterBreakdown struct {
	ChapterID   string  `json:"chapter_id"`
	ChapterName string  `json:"chapter_name"`
	Score       int     `json:"score"`
	MaxScore    int     `json:"max_score"`
	Percentage  float64 `json:"percentage"`
	// Classification is "strength", "weakness" or "insufficient data"
	// (the latter when MaxScore is zero).
	Classification string `json:"classification"`
}

// Recommendation states whether regeneration is warranted.
type Recommendation struct {
	Required         bool    `json:"required"`
	ThresholdPercent float64 `json:"threshold_percent"`
	Explanation      string  `json:"explanation"`
}

// Analysis is the performance analyzer's diagnostic report.
type Analysis struct {
	UnitID         string             `json:"unit_id"`
	UnitName       string             `json:"unit_name"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Breakdown      []ChapterBreakdown `json:"breakdown"`
	Recommendation Recommendation     `json:"recommendation"`
}
