package model

import "gorm.io/gorm"

type TableStatus struct {
	Name   string
	Exists bool
}

func models() []interface{} {
	return []interface{}{&UserModel{}, &ThemeModel{}, &PostModel{}}
}

// AutoMigrate creates or updates the blog schema. Users and themes are
// migrated before posts so the cascade foreign keys can be created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(models()...)
}

// Tables reports which blog tables exist, in migration order.
func Tables(db *gorm.DB) []TableStatus {
	migrator := db.Migrator()
	var tables []TableStatus
	for _, m := range models() {
		tables = append(tables, TableStatus{
			Name:   m.(interface{ TableName() string }).TableName(),
			Exists: migrator.HasTable(m),
		})
	}
	return tables
}
