// internals/features/university/content/hierarchy.go
package content

import (
	"github.com/google/uuid"

	"elevencentral_backend/internals/apierr"
	courseModel "elevencentral_backend/internals/features/university/courses/model"
	lessonModel "elevencentral_backend/internals/features/university/lessons/model"
	moduleModel "elevencentral_backend/internals/features/university/modules/model"
	programModel "elevencentral_backend/internals/features/university/programs/model"
)

/* =========================================================
   Hierarchy Assembler
========================================================= */

type LessonNode struct {
	lessonModel.LessonModel
	Children []moduleModel.ModuleModel `json:"children"`
}

type CourseNode struct {
	courseModel.CourseModel
	Children []LessonNode `json:"children"`
}

type ProgramNode struct {
	programModel.ProgramModel
	Children []CourseNode `json:"children"`
}

// BuildHierarchy reads all four tables (unfiltered by status) and nests
// them for display, ordered by sequence_order within each level. A
// schema-mismatch store error (undefined table) yields an empty list with
// no error so the tree view stays non-fatal; anything else propagates.
func (s *Service) BuildHierarchy() ([]ProgramNode, error) {
	var programs []programModel.ProgramModel
	if err := s.DB.Order("program_created_at ASC").Find(&programs).Error; err != nil {
		if apierr.IsUndefinedTable(err) {
			return []ProgramNode{}, nil
		}
		return nil, apierr.Store(err)
	}

	var courses []courseModel.CourseModel
	if err := s.DB.Order("course_sequence_order ASC, course_created_at ASC").Find(&courses).Error; err != nil {
		if apierr.IsUndefinedTable(err) {
			return []ProgramNode{}, nil
		}
		return nil, apierr.Store(err)
	}

	var lessons []lessonModel.LessonModel
	if err := s.DB.Order("lesson_sequence_order ASC, lesson_created_at ASC").Find(&lessons).Error; err != nil {
		if apierr.IsUndefinedTable(err) {
			return []ProgramNode{}, nil
		}
		return nil, apierr.Store(err)
	}

	var modules []moduleModel.ModuleModel
	if err := s.DB.Order("module_sequence_order ASC, module_created_at ASC").Find(&modules).Error; err != nil {
		if apierr.IsUndefinedTable(err) {
			return []ProgramNode{}, nil
		}
		return nil, apierr.Store(err)
	}

	modulesByLesson := make(map[uuid.UUID][]moduleModel.ModuleModel)
	for _, m := range modules {
		modulesByLesson[m.ModuleLessonID] = append(modulesByLesson[m.ModuleLessonID], m)
	}

	lessonsByCourse := make(map[uuid.UUID][]LessonNode)
	for _, l := range lessons {
		children := modulesByLesson[l.LessonID]
		if children == nil {
			children = []moduleModel.ModuleModel{}
		}
		lessonsByCourse[l.LessonCourseID] = append(lessonsByCourse[l.LessonCourseID], LessonNode{
			LessonModel: l,
			Children:    children,
		})
	}

	coursesByProgram := make(map[uuid.UUID][]CourseNode)
	for _, cs := range courses {
		children := lessonsByCourse[cs.CourseID]
		if children == nil {
			children = []LessonNode{}
		}
		coursesByProgram[cs.CourseProgramID] = append(coursesByProgram[cs.CourseProgramID], CourseNode{
			CourseModel: cs,
			Children:    children,
		})
	}

	tree := make([]ProgramNode, 0, len(programs))
	for _, p := range programs {
		children := coursesByProgram[p.ProgramID]
		if children == nil {
			children = []CourseNode{}
		}
		tree = append(tree, ProgramNode{
			ProgramModel: p,
			Children:     children,
		})
	}
	return tree, nil
}
