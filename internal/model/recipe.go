package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
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

	return json.Unmarshal(bytes, a)
}

// Recipe is a generated recipe record, keyed by slug on the wire. Records are
// upserted by slug and immutable afterwards.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"-"`
	Slug        string           `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Short       string           `gorm:"type:text" json:"short"`
	CookTime    string           `gorm:"size:16" json:"time"`
	Servings    int              `json:"servings"`
	Difficulty  string           `gorm:"size:16" json:"difficulty"`
	Cuisine     string           `gorm:"size:32" json:"cuisine"`
	Kcal        int              `json:"kcal"`
	Protein     int              `json:"protein"`
	Carbs       int              `json:"carbs"`
	Fats        int              `json:"fats"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Tips        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tips"`
	Image       string           `gorm:"size:255" json:"image"`
	AIGenerated bool             `json:"aiGenerated"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
