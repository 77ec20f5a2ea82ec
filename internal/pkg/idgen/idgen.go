// Package idgen provides ID generation utilities
package idgen

import (
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/ba-raid-api/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// TimeOrdered generates version 7 UUIDs, so IDs from one generator sort by
// creation time
type TimeOrdered struct {
	prefix string
}

// NewTimeOrdered creates a generator whose IDs read "<prefix>_<uuid>". An
// empty prefix yields bare UUIDs.
func NewTimeOrdered(prefix string) *TimeOrdered {
	return &TimeOrdered{prefix: prefix}
}

// Generate creates a new ID
func (g *TimeOrdered) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// only fails when the random source does
		id = uuid.New()
	}
	if g.prefix == "" {
		return id.String()
	}
	return g.prefix + "_" + id.String()
}
