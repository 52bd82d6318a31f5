package entity

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"-"`
	Photo    string `json:"photo,omitempty"`
	Posts    []Post `json:"posts,omitempty"`
}
