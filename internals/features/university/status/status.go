// internals/features/university/status/status.go
package status

// Status is the publication state shared by programs, courses, lessons and
// modules. Archiving is the soft path; hard deletes only happen through
// explicit admin delete or orphan cleanup.
type Status string

const (
	Draft     Status = "draft"
	Published Status = "published"
	Archived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case Draft, Published, Archived:
		return true
	}
	return false
}

// CanTransition enforces the UI convention:
// draft → published → archived, plus archived → published (restore).
func CanTransition(from, to Status) bool {
	switch from {
	case Draft:
		return to == Published
	case Published:
		return to == Archived
	case Archived:
		return to == Published
	}
	return false
}
