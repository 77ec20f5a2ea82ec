// Package raid holds the domain types for raid party records: packed slot
// codes, decoded slots, parties, character filters and difficulty tiers.
package raid

import (
	"github.com/KirkDiggler/ba-raid-api/internal/errors"
)

// SlotCode is the packed wire form of one roster slot:
// studentID*1000 + star*100 + weapon*10 + assist. Zero means an empty slot.
type SlotCode int

// EmptySlot is the code used by upstream data for an unoccupied position
const EmptySlot SlotCode = 0

// Valid ranges for slot fields
const (
	MinStar   = 0
	MaxStar   = 5
	MinWeapon = 0
	MaxWeapon = 4

	// WeaponStar is the only star grade at which weapon levels are shown
	WeaponStar = 5
)

// Role partitions students by ID range
type Role string

// Student roles
const (
	RoleStriker Role = "striker"
	RoleSpecial Role = "special"
	RoleUnknown Role = "unknown"
)

// RoleOf returns the role implied by a student ID
func RoleOf(studentID int) Role {
	switch {
	case studentID >= 10000 && studentID < 20000:
		return RoleStriker
	case studentID >= 20000 && studentID < 30000:
		return RoleSpecial
	default:
		return RoleUnknown
	}
}

// Slot is a decoded roster position. The zero value is an empty slot.
type Slot struct {
	StudentID int  `json:"student_id"`
	Star      int  `json:"star"`
	Weapon    int  `json:"weapon"`
	Assist    bool `json:"assist"`
}

// DecodeSlot unpacks a slot code. It reports false for empty (or negative)
// codes without touching the field arithmetic.
func DecodeSlot(code SlotCode) (Slot, bool) {
	if code <= EmptySlot {
		return Slot{}, false
	}

	c := int(code)
	return Slot{
		StudentID: c / 1000,
		Star:      (c % 1000) / 100,
		Weapon:    (c % 100) / 10,
		Assist:    c%10 != 0,
	}, true
}

// ParseSlotCode is the strict form of DecodeSlot for user-supplied codes.
// Zero parses to an empty slot; negative codes, an assist digit other than
// 0 or 1, and out-of-range fields are rejected.
func ParseSlotCode(code SlotCode) (Slot, error) {
	if code == EmptySlot {
		return Slot{}, nil
	}
	if code < EmptySlot {
		return Slot{}, errors.InvalidArgumentf("slot code %d is negative", code)
	}
	if digit := int(code) % 10; digit > 1 {
		return Slot{}, errors.InvalidArgumentf("slot code %d has assist digit %d", code, digit)
	}

	s, _ := DecodeSlot(code)
	if err := s.Validate(); err != nil {
		return Slot{}, errors.Wrapf(err, "slot code %d: %s", code, errors.GetMessage(err))
	}
	return s, nil
}

// EncodeSlot packs a slot after validating its fields
func EncodeSlot(s Slot) (SlotCode, error) {
	if err := s.Validate(); err != nil {
		return EmptySlot, err
	}
	return s.Code(), nil
}

// Code packs the slot without validation. Empty slots encode to EmptySlot.
func (s Slot) Code() SlotCode {
	if s.IsEmpty() {
		return EmptySlot
	}
	assist := 0
	if s.Assist {
		assist = 1
	}
	return SlotCode(s.StudentID*1000 + s.Star*100 + s.Weapon*10 + assist)
}

// Validate checks that every field fits its single-digit position
func (s Slot) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("student_id", s.StudentID, vb)
	errors.ValidateRange("star", s.Star, MinStar, MaxStar, vb)
	errors.ValidateRange("weapon", s.Weapon, MinWeapon, MaxWeapon, vb)

	return vb.Build()
}

// IsEmpty reports whether the slot holds no student
func (s Slot) IsEmpty() bool {
	return s.StudentID == 0
}

// Grade returns the star/weapon pair of the slot
func (s Slot) Grade() Grade {
	return Grade{Star: s.Star, Weapon: s.Weapon}
}

// Role returns the role of the student in the slot
func (s Slot) Role() Role {
	return RoleOf(s.StudentID)
}

// Grade is a star/weapon upgrade tier of a student
type Grade struct {
	Star   int `json:"star"`
	Weapon int `json:"weapon"`
}

// GradeFromKey splits a two-digit grade key (star*10 + weapon)
func GradeFromKey(key int) Grade {
	return Grade{Star: key / 10, Weapon: key % 10}
}

// Key packs the grade into its two-digit form
func (g Grade) Key() int {
	return g.Star*10 + g.Weapon
}

// ShowsWeapon reports whether the weapon level is meaningful for display.
// Weapon upgrades only exist at five stars.
func (g Grade) ShowsWeapon() bool {
	return g.Star >= WeaponStar
}
