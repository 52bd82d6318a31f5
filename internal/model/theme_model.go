package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ThemeModel struct {
	ID          string      `gorm:"type:uuid;primary_key" json:"id"`
	Description string      `gorm:"type:varchar(255);not null" json:"description"`
	Posts       []PostModel `gorm:"foreignKey:ThemeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts,omitempty"`
}

func (ThemeModel) TableName() string {
	return "tb_temas"
}

func (t *ThemeModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
