package raid

import (
	"encoding/json"
	"fmt"
)

// CharacterFilter selects a student either at any grade or at one exact
// grade. Build it with AnyGrade or ExactGrade.
type CharacterFilter struct {
	studentID int
	exact     bool
	grade     Grade
}

// AnyGrade matches every grade of a student
func AnyGrade(studentID int) CharacterFilter {
	return CharacterFilter{studentID: studentID}
}

// ExactGrade matches a student only at the given star and weapon level
func ExactGrade(studentID, star, weapon int) CharacterFilter {
	return CharacterFilter{
		studentID: studentID,
		exact:     true,
		grade:     Grade{Star: star, Weapon: weapon},
	}
}

// ExactGradeKey is ExactGrade with a packed grade key
func ExactGradeKey(studentID, gradeKey int) CharacterFilter {
	g := GradeFromKey(gradeKey)
	return ExactGrade(studentID, g.Star, g.Weapon)
}

// StudentID returns the student the filter selects
func (f CharacterFilter) StudentID() int {
	return f.studentID
}

// IsExact reports whether the filter is pinned to one grade
func (f CharacterFilter) IsExact() bool {
	return f.exact
}

// Grade returns the pinned grade and whether there is one
func (f CharacterFilter) Grade() (Grade, bool) {
	return f.grade, f.exact
}

// Matches reports whether the slot satisfies the filter. Empty slots never
// match.
func (f CharacterFilter) Matches(s Slot) bool {
	if s.IsEmpty() || s.StudentID != f.studentID {
		return false
	}
	if !f.exact {
		return true
	}
	return s.Star == f.grade.Star && s.Weapon == f.grade.Weapon
}

// String renders the filter in its tuple form
func (f CharacterFilter) String() string {
	if f.exact {
		return fmt.Sprintf("[%d,%d]", f.studentID, f.grade.Key())
	}
	return fmt.Sprintf("[%d]", f.studentID)
}

// MarshalJSON writes the legacy tuple shape: [studentID] or
// [studentID, gradeKey]
func (f CharacterFilter) MarshalJSON() ([]byte, error) {
	if f.exact {
		return json.Marshal([]int{f.studentID, f.grade.Key()})
	}
	return json.Marshal([]int{f.studentID})
}

// UnmarshalJSON reads the legacy tuple shape
func (f *CharacterFilter) UnmarshalJSON(data []byte) error {
	var tuple []int
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	switch len(tuple) {
	case 1:
		*f = AnyGrade(tuple[0])
	case 2:
		*f = ExactGradeKey(tuple[0], tuple[1])
	default:
		return fmt.Errorf("character filter must have 1 or 2 elements, got %d", len(tuple))
	}
	return nil
}
