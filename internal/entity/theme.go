package entity

type Theme struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Posts       []Post `json:"posts,omitempty"`
}
