// internal/models/base.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the shared model for all engine rows. Rows are UUID-keyed so
// identities can be minted by any scoring device without coordination.
type Base struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh UUID when the caller did not provide one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BaseRunners is the JSONB column holding current base occupancy.
// It is a mutable snapshot on the game row, not a projection of event
// history, so scorers can correct it directly.
type BaseRunners struct {
	First  bool `json:"first"`
	Second bool `json:"second"`
	Third  bool `json:"third"`
}

// Empty returns occupancy with all bases clear.
func EmptyBases() BaseRunners {
	return BaseRunners{}
}

func (r BaseRunners) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// Scan unmarshals a JSONB column into the struct.
func (r *BaseRunners) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("BaseRunners: expected []byte, got %T", src)
	}
}
