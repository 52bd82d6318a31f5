package database

import (
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm"
)

// AuditZone is the fixed UTC-03:00 offset audit timestamps are recorded in.
var AuditZone = time.FixedZone("BRT", -3*60*60)

// Auditable is implemented by models whose last-modified timestamp is owned
// by the persistence layer. Any value a caller put there is overwritten on
// every create and update.
type Auditable interface {
	SetAuditTime(t time.Time)
}

func AuditNow() time.Time {
	return time.Now().In(AuditZone)
}

// RegisterAuditCallbacks installs the create and update hooks that stamp
// Auditable values. clock defaults to AuditNow.
func RegisterAuditCallbacks(db *gorm.DB, clock func() time.Time) error {
	if clock == nil {
		clock = AuditNow
	}
	stamp := stampAudit(clock)

	if err := db.Callback().Create().Before("gorm:create").Register("audit:stamp_create", stamp); err != nil {
		return fmt.Errorf("failed to register create audit callback: %w", err)
	}
	if err := db.Callback().Update().Before("gorm:update").Register("audit:stamp_update", stamp); err != nil {
		return fmt.Errorf("failed to register update audit callback: %w", err)
	}
	return nil
}

func stampAudit(clock func() time.Time) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement == nil {
			return
		}

		now := clock()
		rv := db.Statement.ReflectValue
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				stampValue(rv.Index(i), now)
			}
		case reflect.Struct:
			stampValue(rv, now)
		}
	}
}

func stampValue(v reflect.Value, now time.Time) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct || !v.CanAddr() {
		return
	}
	if auditable, ok := v.Addr().Interface().(Auditable); ok {
		auditable.SetAuditTime(now)
	}
}
