package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores a []string as a JSON text column so the same model
// works on postgres and on the sqlite driver used in tests.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported column type %T for StringList", src)
}

// RowList stores the retained preview rows as a JSON text column.
type RowList []map[string]any

func (r RowList) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RowList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	}
	return fmt.Errorf("unsupported column type %T for RowList", src)
}

// Dataset is a parsed CSV upload. Rows hold only the retained preview
// (at most 50 rows); RowCount is the full count from the parse. A dataset
// is never updated in place — re-uploading produces a new row.
type Dataset struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"userId" gorm:"type:uuid;index;not null"`
	User      User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	FileName  string     `json:"fileName" gorm:"type:varchar(255);not null"`
	FileSize  int64      `json:"fileSize" gorm:"not null"`
	Columns   StringList `json:"columns" gorm:"type:text;not null"`
	Rows      RowList    `json:"rows" gorm:"type:text;not null"`
	RowCount  int        `json:"rowCount" gorm:"not null"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (d *Dataset) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
