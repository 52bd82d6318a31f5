package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       string      `gorm:"type:uuid;primary_key" json:"id"`
	Name     string      `gorm:"type:varchar(255);not null" json:"name"`
	Username string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string      `gorm:"type:varchar(255);not null" json:"-"`
	Photo    string      `gorm:"type:varchar(5000)" json:"photo"`
	Posts    []PostModel `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts,omitempty"`
}

func (UserModel) TableName() string {
	return "tb_usuarios"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
