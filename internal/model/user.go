package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Preferences is the user's dietary preference object, stored as a single
// JSONB document and always overwritten wholesale.
type Preferences struct {
	Diet      string   `json:"diet"`
	Allergies []string `json:"allergies"`
}

// Value implements the driver.Valuer interface
func (p Preferences) Value() (driver.Value, error) {
	if p.Allergies == nil {
		p.Allergies = []string{}
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *Preferences) Scan(value interface{}) error {
	if value == nil {
		*p = Preferences{Diet: "none", Allergies: []string{}}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// User is an account record. Email is stored lowercase and unique.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	Name         string      `gorm:"size:100;not null" json:"name"`
	Email        string      `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"size:100;not null" json:"-"`
	Avatar       string      `gorm:"size:255" json:"avatar"`
	Preferences  Preferences `gorm:"type:jsonb" json:"preferences"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
