package models

type QuizStats struct {
	TotalQuizzes   int    `json:"totalQuizzes"`
	TotalCorrect   int    `json:"totalCorrect"`
	TotalQuestions int    `json:"totalQuestions"`
	BestStreak     int    `json:"bestStreak"`
	CurrentStreak  int    `json:"currentStreak"`
	LastPlayed     string `json:"lastPlayed"`
}

// Accuracy is the lifetime share of correct answers, in percent.
func (s QuizStats) Accuracy() float64 {
	if s.TotalQuestions <= 0 {
		return 0
	}
	return float64(s.TotalCorrect) * 100 / float64(s.TotalQuestions)
}
