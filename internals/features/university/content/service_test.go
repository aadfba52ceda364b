package content

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"elevencentral_backend/internals/apierr"
	courseModel "elevencentral_backend/internals/features/university/courses/model"
	lessonModel "elevencentral_backend/internals/features/university/lessons/model"
	moduleModel "elevencentral_backend/internals/features/university/modules/model"
	programModel "elevencentral_backend/internals/features/university/programs/model"
	"elevencentral_backend/internals/features/university/status"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// each test gets its own named in-memory DB; cache=shared keeps it
	// visible across pooled connections
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&programModel.ProgramModel{},
		&courseModel.CourseModel{},
		&lessonModel.LessonModel{},
		&moduleModel.ModuleModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func makeProgram(t *testing.T, db *gorm.DB, title string) *programModel.ProgramModel {
	t.Helper()
	p := &programModel.ProgramModel{ProgramTitle: title, ProgramStatus: status.Published}
	require.NoError(t, db.Create(p).Error)
	return p
}

func makeCourse(t *testing.T, db *gorm.DB, programID uuid.UUID, title string, seq int, createdAt time.Time) *courseModel.CourseModel {
	t.Helper()
	c := &courseModel.CourseModel{
		CourseProgramID:     programID,
		CourseTitle:         title,
		CourseSequenceOrder: seq,
		CourseStatus:        status.Published,
		CourseCreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func makeLesson(t *testing.T, db *gorm.DB, courseID uuid.UUID, title string, seq int) *lessonModel.LessonModel {
	t.Helper()
	l := &lessonModel.LessonModel{
		LessonCourseID:      courseID,
		LessonTitle:         title,
		LessonSequenceOrder: seq,
		LessonStatus:        status.Published,
	}
	require.NoError(t, db.Create(l).Error)
	return l
}

func courseSeqByID(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	t.Helper()
	var c courseModel.CourseModel
	require.NoError(t, db.First(&c, "course_id = ?", id).Error)
	return c.CourseSequenceOrder
}

/* =========================================================
   Sequence Normalizer
========================================================= */

func TestNormalizeRewritesGappedGroupToDense(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Service Foundations")
	a := makeCourse(t, db, p.ProgramID, "A", 2, base)
	b := makeCourse(t, db, p.ProgramID, "B", 5, base.Add(time.Minute))
	c := makeCourse(t, db, p.ProgramID, "C", 9, base.Add(2*time.Minute))

	changes, err := svc.NormalizeEntity("course")
	require.NoError(t, err)

	assert.Equal(t, 1, courseSeqByID(t, db, a.CourseID))
	assert.Equal(t, 2, courseSeqByID(t, db, b.CourseID))
	assert.Equal(t, 3, courseSeqByID(t, db, c.CourseID))
	// every row was gapped, so every row changed
	assert.Len(t, changes, 3)
	assert.Equal(t, SequenceChange{ID: a.CourseID, ParentID: p.ProgramID, Old: 2, New: 1}, changes[0])
}

func TestNormalizeDenseGroupPerformsZeroWrites(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Wine Service")
	makeCourse(t, db, p.ProgramID, "A", 1, base)
	makeCourse(t, db, p.ProgramID, "B", 2, base.Add(time.Minute))
	makeCourse(t, db, p.ProgramID, "C", 3, base.Add(2*time.Minute))

	changes, err := svc.NormalizeEntity("course")
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestNormalizeSkipsSingletonGroups(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p1 := makeProgram(t, db, "Solo One")
	p2 := makeProgram(t, db, "Solo Two")
	lone1 := makeCourse(t, db, p1.ProgramID, "Only", 7, base)
	lone2 := makeCourse(t, db, p2.ProgramID, "Other Only", 42, base)

	changes, err := svc.NormalizeEntity("course")
	require.NoError(t, err)
	assert.Empty(t, changes, "groups of size 1 cannot be disordered")
	assert.Equal(t, 7, courseSeqByID(t, db, lone1.CourseID))
	assert.Equal(t, 42, courseSeqByID(t, db, lone2.CourseID))
}

func TestNormalizeProducesExactSetOneToN(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Mixology")
	for i, seq := range []int{14, 3, 99, 7, 22, 5} {
		makeCourse(t, db, p.ProgramID, fmt.Sprintf("course-%d", seq), seq, base.Add(time.Duration(i)*time.Second))
	}

	_, err := svc.NormalizeEntity("course")
	require.NoError(t, err)

	var seqs []int
	require.NoError(t, db.Model(&courseModel.CourseModel{}).
		Where("course_program_id = ?", p.ProgramID).
		Order("course_sequence_order ASC").
		Pluck("course_sequence_order", &seqs).Error)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seqs)

	// relative ordering by prior sequence value is preserved: 3,5,7,14,22,99
	var titlesBySeq []courseModel.CourseModel
	require.NoError(t, db.Where("course_program_id = ?", p.ProgramID).
		Order("course_sequence_order ASC").Find(&titlesBySeq).Error)
	assert.Equal(t, 6, len(titlesBySeq))
}

// Scenario from the reorder bug reports: courses created B,A,C with
// sequence values [3,1,1]. Fetch order is seq asc with created_at as the
// tie-break, so A (older) comes before C; normalization assigns
// A→1, C→2, B→3.
func TestNormalizeDuplicateSequenceTieBreaksByCreatedAt(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Door Policy")
	b := makeCourse(t, db, p.ProgramID, "B", 3, base)
	a := makeCourse(t, db, p.ProgramID, "A", 1, base.Add(time.Minute))
	c := makeCourse(t, db, p.ProgramID, "C", 1, base.Add(2*time.Minute))

	changes, err := svc.NormalizeEntity("course")
	require.NoError(t, err)

	assert.Equal(t, 1, courseSeqByID(t, db, a.CourseID))
	assert.Equal(t, 2, courseSeqByID(t, db, c.CourseID))
	assert.Equal(t, 3, courseSeqByID(t, db, b.CourseID))
	// A already sat at 1 and B already at position 3, so only C was written
	require.Len(t, changes, 1)
	assert.Equal(t, SequenceChange{ID: c.CourseID, ParentID: p.ProgramID, Old: 1, New: 2}, changes[0])
}

func TestNormalizeHandlesMultipleGroupsIndependently(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p1 := makeProgram(t, db, "P1")
	p2 := makeProgram(t, db, "P2")
	// p1 gapped, p2 dense
	g1a := makeCourse(t, db, p1.ProgramID, "g1a", 4, base)
	g1b := makeCourse(t, db, p1.ProgramID, "g1b", 8, base.Add(time.Second))
	makeCourse(t, db, p2.ProgramID, "g2a", 1, base)
	makeCourse(t, db, p2.ProgramID, "g2b", 2, base.Add(time.Second))

	changes, err := svc.NormalizeEntity("course")
	require.NoError(t, err)
	assert.Len(t, changes, 2)
	assert.Equal(t, 1, courseSeqByID(t, db, g1a.CourseID))
	assert.Equal(t, 2, courseSeqByID(t, db, g1b.CourseID))
}

func TestNormalizeAllSweepsEveryLevel(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Everything")
	c1 := makeCourse(t, db, p.ProgramID, "c1", 5, base)
	c2 := makeCourse(t, db, p.ProgramID, "c2", 9, base.Add(time.Second))
	makeLesson(t, db, c1.CourseID, "l1", 3)
	makeLesson(t, db, c1.CourseID, "l2", 6)

	out, err := svc.NormalizeAll()
	require.NoError(t, err)
	assert.Len(t, out["course"], 2)
	assert.Len(t, out["lesson"], 2)
	assert.Empty(t, out["module"])

	assert.Equal(t, 1, courseSeqByID(t, db, c1.CourseID))
	assert.Equal(t, 2, courseSeqByID(t, db, c2.CourseID))
}

/* =========================================================
   Reassignment Operations
========================================================= */

func TestReassignToMissingTargetFailsWithZeroMutation(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Host Training")
	c1 := makeCourse(t, db, p.ProgramID, "c1", 1, base)
	l1 := makeLesson(t, db, c1.CourseID, "L1", 1)
	l2 := makeLesson(t, db, c1.CourseID, "L2", 2)

	ghost := uuid.New()
	_, err := svc.ReassignChildren("lesson", ghost, []uuid.UUID{l1.LessonID, l2.LessonID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Target course does not exist")

	var fresh1, fresh2 lessonModel.LessonModel
	require.NoError(t, db.First(&fresh1, "lesson_id = ?", l1.LessonID).Error)
	require.NoError(t, db.First(&fresh2, "lesson_id = ?", l2.LessonID).Error)
	assert.Equal(t, c1.CourseID, fresh1.LessonCourseID, "lesson must keep its course on failed reassignment")
	assert.Equal(t, c1.CourseID, fresh2.LessonCourseID)
}

func TestReassignMovesChildrenToExistingTarget(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Host Training")
	c1 := makeCourse(t, db, p.ProgramID, "c1", 1, base)
	c2 := makeCourse(t, db, p.ProgramID, "c2", 2, base.Add(time.Second))
	l1 := makeLesson(t, db, c1.CourseID, "L1", 1)
	l2 := makeLesson(t, db, c1.CourseID, "L2", 2)
	stay := makeLesson(t, db, c1.CourseID, "stay", 3)

	updated, err := svc.ReassignChildren("lesson", c2.CourseID, []uuid.UUID{l1.LessonID, l2.LessonID})
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	var moved lessonModel.LessonModel
	require.NoError(t, db.First(&moved, "lesson_id = ?", l1.LessonID).Error)
	assert.Equal(t, c2.CourseID, moved.LessonCourseID)

	var untouched lessonModel.LessonModel
	require.NoError(t, db.First(&untouched, "lesson_id = ?", stay.LessonID).Error)
	assert.Equal(t, c1.CourseID, untouched.LessonCourseID)
}

func TestReassignUnknownEntityRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	_, err := svc.ReassignChildren("venue", uuid.New(), []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity type")
}

/* =========================================================
   Orphan Resolver
========================================================= */

func TestDeleteOrphansRemovesExactlyGivenRows(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Cleanup")
	keep := makeCourse(t, db, p.ProgramID, "keep", 1, base)
	dead1 := makeCourse(t, db, uuid.New(), "dead1", 1, base)
	dead2 := makeCourse(t, db, uuid.New(), "dead2", 1, base)

	res, err := svc.DeleteOrphans("course", []uuid.UUID{dead1.CourseID, dead2.CourseID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Count)
	assert.Len(t, res.Deleted, 2)

	var remaining int64
	require.NoError(t, db.Model(&courseModel.CourseModel{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)

	var still courseModel.CourseModel
	assert.NoError(t, db.First(&still, "course_id = ?", keep.CourseID).Error)
}

func TestDeleteOrphansCountsOnlyRowsThatExisted(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	dead := makeCourse(t, db, uuid.New(), "dead", 1, base)
	absent := uuid.New()

	res, err := svc.DeleteOrphans("course", []uuid.UUID{dead.CourseID, absent})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Count, "already-absent IDs must not inflate the count")
}

func TestFindOrphansReportsChildrenWithMissingParent(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "Attached")
	makeCourse(t, db, p.ProgramID, "attached", 1, base)
	orphan := makeCourse(t, db, uuid.New(), "floating", 1, base)

	ids, err := svc.FindOrphans("course")
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, orphan.CourseID, ids[0])
}

// No automatic cascade: deleting an orphaned course leaves its lessons
// behind as fresh orphans for the next pass.
func TestDeleteOrphansDoesNotCascadeToGrandchildren(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	orphanCourse := makeCourse(t, db, uuid.New(), "floating", 1, base)
	makeLesson(t, db, orphanCourse.CourseID, "child", 1)

	_, err := svc.DeleteOrphans("course", []uuid.UUID{orphanCourse.CourseID})
	require.NoError(t, err)

	newOrphans, err := svc.FindOrphans("lesson")
	require.NoError(t, err)
	assert.Len(t, newOrphans, 1)
}

/* =========================================================
   Hierarchy Assembler
========================================================= */

func TestHierarchyOnEmptyDatabaseReturnsEmptyList(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)

	tree, err := svc.BuildHierarchy()
	require.NoError(t, err)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}

func TestHierarchyHidesSchemaMismatchBehindEmptyResult(t *testing.T) {
	// no AutoMigrate: the store has no tables at all
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	svc := NewService(db)

	tree, err := svc.BuildHierarchy()
	require.NoError(t, err, "undefined-table errors are deliberately hidden")
	assert.Empty(t, tree)
}

func TestHierarchyNestsAndOrdersBySequence(t *testing.T) {
	db := openTestDB(t)
	svc := NewService(db)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	p := makeProgram(t, db, "VIP Service")
	c2 := makeCourse(t, db, p.ProgramID, "second", 2, base)
	c1 := makeCourse(t, db, p.ProgramID, "first", 1, base.Add(time.Second))
	lB := makeLesson(t, db, c1.CourseID, "lesson-two", 2)
	lA := makeLesson(t, db, c1.CourseID, "lesson-one", 1)

	m := &moduleModel.ModuleModel{
		ModuleLessonID:      lA.LessonID,
		ModuleTitle:         "intro clip",
		ModuleSequenceOrder: 1,
		ModuleStatus:        status.Published,
	}
	require.NoError(t, db.Create(m).Error)

	tree, err := svc.BuildHierarchy()
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 2)

	// sequence_order ascending within each level
	assert.Equal(t, c1.CourseID, tree[0].Children[0].CourseID)
	assert.Equal(t, c2.CourseID, tree[0].Children[1].CourseID)

	firstCourse := tree[0].Children[0]
	require.Len(t, firstCourse.Children, 2)
	assert.Equal(t, lA.LessonID, firstCourse.Children[0].LessonID)
	assert.Equal(t, lB.LessonID, firstCourse.Children[1].LessonID)

	require.Len(t, firstCourse.Children[0].Children, 1)
	assert.Equal(t, m.ModuleID, firstCourse.Children[0].Children[0].ModuleID)

	// leaves with no children carry an empty list, not null
	assert.NotNil(t, firstCourse.Children[1].Children)
	assert.Empty(t, firstCourse.Children[1].Children)
}

func TestNormalizeAbortsOnFailedWriteKeepingEarlierWrites(t *testing.T) {
	db := openTestDB(t)
	p := makeProgram(t, db, "Service Basics")
	base := time.Now().Add(-time.Hour)
	a := makeCourse(t, db, p.ProgramID, "A", 5, base)
	b := makeCourse(t, db, p.ProgramID, "B", 6, base.Add(time.Minute))
	c := makeCourse(t, db, p.ProgramID, "C", 7, base.Add(2*time.Minute))

	// refuse the second UPDATE so the loop fails mid-group
	updates := 0
	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("refuse_second_update", func(tx *gorm.DB) {
			updates++
			if updates == 2 {
				tx.AddError(errors.New("write refused"))
			}
		}))

	svc := NewService(db)
	changes, err := svc.NormalizeEntity("course")
	require.Error(t, err)

	var apiErr *apierr.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierr.KindStore, apiErr.Kind)

	// only the write that landed before the failure is reported
	require.Len(t, changes, 1)
	assert.Equal(t, a.CourseID, changes[0].ID)
	assert.Equal(t, 5, changes[0].Old)
	assert.Equal(t, 1, changes[0].New)

	// the applied renumbering stays in place, the rest is untouched
	assert.Equal(t, 1, courseSeqByID(t, db, a.CourseID))
	assert.Equal(t, 6, courseSeqByID(t, db, b.CourseID))
	assert.Equal(t, 7, courseSeqByID(t, db, c.CourseID))

	// once the fault clears, a re-run converges to a dense 1..N
	require.NoError(t, db.Callback().Update().Remove("refuse_second_update"))
	_, err = svc.NormalizeEntity("course")
	require.NoError(t, err)
	assert.Equal(t, 1, courseSeqByID(t, db, a.CourseID))
	assert.Equal(t, 2, courseSeqByID(t, db, b.CourseID))
	assert.Equal(t, 3, courseSeqByID(t, db, c.CourseID))
}
