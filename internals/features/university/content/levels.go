// internals/features/university/content/levels.go
package content

import "elevencentral_backend/internals/apierr"

// Level describes one child table of the program→course→lesson→module
// hierarchy: where its rows live, how they point at their parent, and the
// error surfaced when a reassignment target is missing.
type Level struct {
	Entity     string
	Table      string
	IDCol      string
	ParentCol  string
	SeqCol     string
	CreatedCol string

	ParentEntity string
	ParentTable  string
	ParentIDCol  string

	TargetNotFoundCode    string
	TargetNotFoundMessage string
}

var levels = []Level{
	{
		Entity:     "course",
		Table:      "courses",
		IDCol:      "course_id",
		ParentCol:  "course_program_id",
		SeqCol:     "course_sequence_order",
		CreatedCol: "course_created_at",

		ParentEntity: "program",
		ParentTable:  "programs",
		ParentIDCol:  "program_id",

		TargetNotFoundCode:    "PROGRAM_NOT_FOUND",
		TargetNotFoundMessage: "Target program does not exist",
	},
	{
		Entity:     "lesson",
		Table:      "lessons",
		IDCol:      "lesson_id",
		ParentCol:  "lesson_course_id",
		SeqCol:     "lesson_sequence_order",
		CreatedCol: "lesson_created_at",

		ParentEntity: "course",
		ParentTable:  "courses",
		ParentIDCol:  "course_id",

		TargetNotFoundCode:    "COURSE_NOT_FOUND",
		TargetNotFoundMessage: "Target course does not exist",
	},
	{
		Entity:     "module",
		Table:      "modules",
		IDCol:      "module_id",
		ParentCol:  "module_lesson_id",
		SeqCol:     "module_sequence_order",
		CreatedCol: "module_created_at",

		ParentEntity: "lesson",
		ParentTable:  "lessons",
		ParentIDCol:  "lesson_id",

		TargetNotFoundCode:    "LESSON_NOT_FOUND",
		TargetNotFoundMessage: "Target lesson does not exist",
	},
}

// Levels returns the child levels in top-down order.
func Levels() []Level { return levels }

// LevelFor resolves an entity name ("course", "lesson", "module").
func LevelFor(entity string) (Level, *apierr.Error) {
	for _, l := range levels {
		if l.Entity == entity || l.Table == entity {
			return l, nil
		}
	}
	return Level{}, apierr.Validation("unknown entity type: " + entity)
}
