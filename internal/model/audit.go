package model

import "time"

// Audit is embedded by models that carry a server-maintained last-modified
// timestamp. The database package stamps it on every create and update.
type Audit struct {
	Date time.Time `gorm:"not null" json:"date"`
}

func (a *Audit) SetAuditTime(t time.Time) {
	a.Date = t
}
