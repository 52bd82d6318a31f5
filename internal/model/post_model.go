package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID      string      `gorm:"type:uuid;primary_key" json:"id"`
	Title   string      `gorm:"type:varchar(100);not null" json:"title"`
	Text    string      `gorm:"type:varchar(1000);not null" json:"text"`
	Image   string      `gorm:"type:varchar(5000)" json:"image"`
	UserID  string      `gorm:"column:UserId;type:uuid;not null;index" json:"user_id"`
	ThemeID string      `gorm:"column:TemaId;type:uuid;not null;index" json:"theme_id"`
	User    *UserModel  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Theme   *ThemeModel `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`

	Audit
}

func (PostModel) TableName() string {
	return "tb_postagens"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
