package entity

import "time"

// Post references its owner and theme by ID; User and Theme are only filled
// when the post is read on its own, so nested payloads never loop.
type Post struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Text    string    `json:"text"`
	Image   string    `json:"image,omitempty"`
	Date    time.Time `json:"date"`
	UserID  string    `json:"user_id"`
	ThemeID string    `json:"theme_id"`
	User    *User     `json:"user,omitempty"`
	Theme   *Theme    `json:"theme,omitempty"`
}
