package dto

import "time"

// UserProfileResponse defines the structure for a user's profile and
// progression state.
// @Description Response body for the authenticated user's profile
type UserProfileResponse struct {
	ID                string              `json:"id"`
	Email             string              `json:"email"`
	Name              string              `json:"name,omitempty"`
	ProfilePictureURL string              `json:"profile_picture_url,omitempty"`
	Progression       ProgressionSnapshot `json:"progression"`
}

// UserAchievementResponse is one unlocked achievement with its catalog entry.
type UserAchievementResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rarity      string    `json:"rarity"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

// UserAchievementListResponse lists a user's unlocks alongside the catalog
// size, so clients can render progress (e.g. 3 of 7).
type UserAchievementListResponse struct {
	Achievements []UserAchievementResponse `json:"achievements"`
	TotalCount   int                       `json:"totalCount"`
	CatalogSize  int                       `json:"catalogSize"`
}
