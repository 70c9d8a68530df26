package models

import "time"

// Session backs the HTTP session store the web frontend relies on. The
// backend only owns the schema; reads and writes happen through the store's
// own connection.
type Session struct {
	SID    string    `gorm:"column:sid;type:varchar;primaryKey"`
	Sess   []byte    `gorm:"column:sess;type:jsonb;not null"`
	Expire time.Time `gorm:"column:expire;not null;index:idx_session_expire"`
}

// TableName keeps the historical table name.
func (Session) TableName() string {
	return "sessions"
}
