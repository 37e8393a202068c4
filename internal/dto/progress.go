package dto

// AchievementResponse is one badge and whether the workspace has earned it.
type AchievementResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	XP          int    `json:"xp"`
	Unlocked    bool   `json:"unlocked"`
}

// ProgressOverview holds completion ratios in [0, 1].
type ProgressOverview struct {
	Sessions   float64 `json:"sessions"`
	Quizzes    float64 `json:"quizzes"`
	StudyTime  float64 `json:"study_time"`
	Characters float64 `json:"characters"`
}

type MilestonesResponse struct {
	SessionsRemaining   int `json:"sessions_remaining"`
	StreakDaysRemaining int `json:"streak_days_remaining"`
	QuizzesRemaining    int `json:"quizzes_remaining"`
}

// ProgressResponse is the gamification view of a workspace.
// @Description XP, level, streak and achievements
type ProgressResponse struct {
	Level            int                   `json:"level"`
	XP               int                   `json:"xp"`
	XPToNextLevel    int                   `json:"xp_to_next_level"`
	XPProgress       float64               `json:"xp_progress"`
	StudyMinutes     int                   `json:"study_minutes"`
	StreakDays       int                   `json:"streak_days"`
	TotalSessions    int                   `json:"total_sessions"`
	QuizzesGenerated int                   `json:"quizzes_generated"`
	Achievements     []AchievementResponse `json:"achievements"`
	Overview         ProgressOverview      `json:"overview"`
	Milestones       MilestonesResponse    `json:"milestones"`
}

type DailyCount struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AnalyticsResponse is the chart data behind the analytics dashboard.
type AnalyticsResponse struct {
	TotalSessions     int          `json:"total_sessions"`
	SessionsToday     int          `json:"sessions_today"`
	TotalCharacters   int          `json:"total_characters"`
	AverageCharacters int          `json:"average_characters"`
	StreakDays        int          `json:"streak_days"`
	Trend             []DailyCount `json:"trend"`
	Difficulties      []LabelCount `json:"difficulties"`
	Levels            []LabelCount `json:"levels"`
}
