package dto

// ==============================================
// PROFILE DTOs
// ==============================================

// ProfileResponse - Gameplay statistics for one identity
type ProfileResponse struct {
	IdentityID  string `json:"identity_id"`
	XP          int    `json:"xp"`
	Coins       int    `json:"coins"`
	Streaks     int    `json:"streaks"`
	StudyHours  int    `json:"study_hours"`
	LastLoginAt string `json:"last_login_at"` // ISO 8601
}

// AddStatsRequest - Apply gameplay rewards after a study/quiz action
type AddStatsRequest struct {
	XP         int  `json:"xp" binding:"omitempty,min=0"`
	Coins      int  `json:"coins" binding:"omitempty,min=0"`
	StudyHours int  `json:"study_hours" binding:"omitempty,min=0"`
	Streak     bool `json:"streak"` // extend the daily streak
}

// ==============================================
// LEADERBOARD DTOs
// ==============================================

// LeaderboardEntryDTO
type LeaderboardEntryDTO struct {
	IdentityID  string `json:"identity_id"`
	DisplayName string `json:"display_name"`
	Score       int64  `json:"score"`
	Rank        int64  `json:"rank"`
}

// LeaderboardResponse
type LeaderboardResponse struct {
	Board   string                `json:"board"` // "xp" or "streak"
	Entries []LeaderboardEntryDTO `json:"entries"`
}

// ==============================================
// TOPIC PROGRESS DTOs
// ==============================================

// UpsertProgressRequest - Record a finished practice/test session
type UpsertProgressRequest struct {
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory" binding:"required"`
	Topic       string `json:"topic" binding:"required"`
	ProgressPct int    `json:"progress_pct" binding:"min=0,max=100"`
	Score       int    `json:"score" binding:"omitempty,min=0"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// ProgressDTO
type ProgressDTO struct {
	TopicID     string `json:"topic_id"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Topic       string `json:"topic"`
	ProgressPct int    `json:"progress_pct"`
	BestScore   int    `json:"best_score"`
	Difficulty  string `json:"difficulty"`
	UpdatedAt   string `json:"updated_at"` // ISO 8601
}

// ProgressListResponse - "Ongoing programs" view, most recent first
type ProgressListResponse struct {
	Items []ProgressDTO `json:"items"`
}
