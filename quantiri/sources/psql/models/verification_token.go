package models

import "time"

// VerificationToken holds the sha256 hash of a raw emailed token, never
// the raw value itself. At most one usable token per identifier: issuing
// deletes all prior rows for the email before inserting.
type VerificationToken struct {
	ID         uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	Identifier string    `json:"identifier" gorm:"type:varchar(255);index;not null"`
	Token      string    `json:"-" gorm:"type:char(64);index;not null"`
	Expires    time.Time `json:"expires" gorm:"not null"`
}
