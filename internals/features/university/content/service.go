// internals/features/university/content/service.go
//
// Maintenance operations over the program→course→lesson→module tree:
// sequence normalization, orphan cleanup, bulk reassignment and the nested
// hierarchy view. All of them are plain round-trips to the store; the
// renumbering loop is deliberately not wrapped in a transaction (see
// NormalizeLevel).
package content

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

/* =========================================================
   Sequence Normalizer
========================================================= */

// SequenceChange records one renumbered row.
type SequenceChange struct {
	ID       uuid.UUID `json:"id"`
	ParentID uuid.UUID `json:"parent_id"`
	Old      int       `json:"old"`
	New      int       `json:"new"`
}

type seqRow struct {
	ID       uuid.UUID `gorm:"column:id"`
	ParentID uuid.UUID `gorm:"column:parent_id"`
	Seq      int       `gorm:"column:seq"`
}

// NormalizeLevel rewrites each sibling group of the given level to a dense
// 1..N sequence, preserving the fetched order (sequence_order ascending,
// created_at as the tie-break). Groups of size ≤1 and groups already dense
// are skipped entirely, so a clean table costs zero writes.
//
// Each changed row is a separate UPDATE. The first failing update aborts
// the rest and surfaces the store error; renumbering already applied stays
// in place. A crash mid-loop therefore leaves a partially renumbered group
// until the next sweep.
func (s *Service) NormalizeLevel(l Level) ([]SequenceChange, error) {
	var rows []seqRow
	if err := s.DB.Table(l.Table).
		Select(fmt.Sprintf("%s AS id, %s AS parent_id, %s AS seq", l.IDCol, l.ParentCol, l.SeqCol)).
		Order(fmt.Sprintf("%s ASC, %s ASC", l.SeqCol, l.CreatedCol)).
		Scan(&rows).Error; err != nil {
		return nil, apierr.Store(err)
	}

	groups := make(map[uuid.UUID][]seqRow)
	parents := make([]uuid.UUID, 0)
	for _, r := range rows {
		if _, seen := groups[r.ParentID]; !seen {
			parents = append(parents, r.ParentID)
		}
		groups[r.ParentID] = append(groups[r.ParentID], r)
	}

	changes := []SequenceChange{}
	for _, parent := range parents {
		group := groups[parent]
		if len(group) <= 1 {
			continue
		}
		for i, r := range group {
			want := i + 1
			if r.Seq == want {
				continue
			}
			if err := s.DB.Table(l.Table).
				Where(l.IDCol+" = ?", r.ID).
				Update(l.SeqCol, want).Error; err != nil {
				// abort remaining batch, keep writes already applied
				return changes, apierr.Store(fmt.Errorf("renumber %s %s: %w", l.Entity, r.ID, err))
			}
			changes = append(changes, SequenceChange{ID: r.ID, ParentID: parent, Old: r.Seq, New: want})
		}
	}
	return changes, nil
}

// NormalizeEntity runs the normalizer for a single entity type.
func (s *Service) NormalizeEntity(entity string) ([]SequenceChange, error) {
	l, aerr := LevelFor(entity)
	if aerr != nil {
		return nil, aerr
	}
	return s.NormalizeLevel(l)
}

// NormalizeAll sweeps every level top-down and reports changes per entity.
func (s *Service) NormalizeAll() (map[string][]SequenceChange, error) {
	out := make(map[string][]SequenceChange, len(levels))
	for _, l := range levels {
		changes, err := s.NormalizeLevel(l)
		out[l.Entity] = changes
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

/* =========================================================
   Orphan Resolver
========================================================= */

// OrphanResult reports what an orphan cleanup removed.
type OrphanResult struct {
	Entity  string           `json:"entity"`
	Deleted []map[string]any `json:"deleted"`
	Count   int64            `json:"count"`
}

// DeleteOrphans deletes exactly the given rows and returns them with the
// count actually removed (fewer than requested when some are already
// gone). Whether the IDs really are orphans is the caller's determination;
// it is not re-verified here. Grandchildren are not cascaded; they become
// newly orphaned and are picked up by a later pass.
func (s *Service) DeleteOrphans(entity string, ids []uuid.UUID) (*OrphanResult, error) {
	l, aerr := LevelFor(entity)
	if aerr != nil {
		return nil, aerr
	}
	if len(ids) == 0 {
		return nil, apierr.Validation("no IDs supplied for orphan cleanup")
	}

	var records []map[string]any
	if err := s.DB.Table(l.Table).
		Where(l.IDCol+" IN ?", ids).
		Find(&records).Error; err != nil {
		return nil, apierr.Store(err)
	}

	res := s.DB.Exec(
		fmt.Sprintf("DELETE FROM %s WHERE %s IN ?", l.Table, l.IDCol), ids,
	)
	if res.Error != nil {
		return nil, apierr.Store(res.Error)
	}

	return &OrphanResult{Entity: l.Entity, Deleted: records, Count: res.RowsAffected}, nil
}

// FindOrphans lists the IDs at a level whose parent row no longer exists.
// This is the caller-side determination feeding DeleteOrphans.
func (s *Service) FindOrphans(entity string) ([]uuid.UUID, error) {
	l, aerr := LevelFor(entity)
	if aerr != nil {
		return nil, aerr
	}
	var ids []uuid.UUID
	if err := s.DB.Table(l.Table).
		Where(fmt.Sprintf("%s NOT IN (SELECT %s FROM %s)", l.ParentCol, l.ParentIDCol, l.ParentTable)).
		Pluck(l.IDCol, &ids).Error; err != nil {
		return nil, apierr.Store(err)
	}
	return ids, nil
}

/* =========================================================
   Reassignment Operations
========================================================= */

// ReassignChildren points the listed children at a new parent. The target
// is verified with a point lookup first; a missing target fails the whole
// call with zero mutation. Sequence density in the source and destination
// groups is NOT repaired here; callers run the normalizer afterward.
func (s *Service) ReassignChildren(entity string, target uuid.UUID, childIDs []uuid.UUID) ([]map[string]any, error) {
	l, aerr := LevelFor(entity)
	if aerr != nil {
		return nil, aerr
	}
	if len(childIDs) == 0 {
		return nil, apierr.Validation("no child IDs supplied")
	}

	var cnt int64
	if err := s.DB.Table(l.ParentTable).
		Where(l.ParentIDCol+" = ?", target).
		Count(&cnt).Error; err != nil {
		return nil, apierr.Store(err)
	}
	if cnt == 0 {
		return nil, apierr.BadTarget(l.TargetNotFoundCode, l.TargetNotFoundMessage)
	}

	if err := s.DB.Table(l.Table).
		Where(l.IDCol+" IN ?", childIDs).
		Update(l.ParentCol, target).Error; err != nil {
		return nil, apierr.Store(err)
	}

	var updated []map[string]any
	if err := s.DB.Table(l.Table).
		Where(l.IDCol+" IN ?", childIDs).
		Order(l.SeqCol + " ASC").
		Find(&updated).Error; err != nil {
		return nil, apierr.Store(err)
	}
	return updated, nil
}
