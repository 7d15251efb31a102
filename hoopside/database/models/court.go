package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Court is a check-in target from the court directory.
type Court struct {
	bun.BaseModel `bun:"table:courts,alias:c"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	City      string    `bun:"city,notnull" json:"city"`
	Address   string    `bun:"address" json:"address"`
	Latitude  float64   `bun:"latitude" json:"latitude"`
	Longitude float64   `bun:"longitude" json:"longitude"`
	Indoor    bool      `bun:"indoor,notnull,default:false" json:"indoor"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"-"`
}
