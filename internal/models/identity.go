package models

import (
	"time"
)

// ==============================================
// IDENTITY
// ==============================================

// Identity is an account on the platform. The credential hash is derived
// deterministically from the phone number (see internal/auth); its security
// rests on OTP possession being checked first, not on credential secrecy.
type Identity struct {
	ID             string // uuid
	DisplayName    string
	CredentialHash string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PhoneMapping links a country-code-prefixed phone number to an identity.
// At most one identity per phone number; the lookup is the sole gate between
// the returning-user and new-user flows.
type PhoneMapping struct {
	Phone      string // normalized, with country code prefix
	IdentityID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ==============================================
// PROFILE
// ==============================================

// Default stats granted to every freshly provisioned profile.
const (
	DefaultXP     = 20
	DefaultCoins  = 5
	DefaultStreak = 0
	DefaultHours  = 0
)

// UserProfile holds gameplay statistics. The platform record is the source
// of truth; cached copies expire after five minutes and are never written back.
type UserProfile struct {
	IdentityID  string    `json:"identity_id"`
	XP          int       `json:"xp"`
	Coins       int       `json:"coins"`
	Streaks     int       `json:"streaks"`
	StudyHours  int       `json:"study_hours"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// ==============================================
// TOPIC PROGRESS
// ==============================================

// TopicProgress tracks one user's standing in one topic.
type TopicProgress struct {
	IdentityID  string    `json:"identity_id"`
	TopicID     string    `json:"topic_id"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Topic       string    `json:"topic"`
	ProgressPct int       `json:"progress_pct"`
	BestScore   int       `json:"best_score"`
	Difficulty  string    `json:"difficulty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
