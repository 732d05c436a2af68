package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
)

/* =========================================================
   Slot math (pure)
========================================================= */

// SlotsOverlap reports whether two weekly slots intersect: same day label and
// intersecting same-day time windows. Unparseable times never overlap.
func SlotsOverlap(a, b *groupModel.GroupScheduleModel) bool {
	if a.GroupScheduleDay != b.GroupScheduleDay {
		return false
	}
	aStart, err := groupModel.MinutesOfDay(a.GroupScheduleStartTime)
	if err != nil {
		return false
	}
	bStart, err := groupModel.MinutesOfDay(b.GroupScheduleStartTime)
	if err != nil {
		return false
	}
	aEnd := aStart + a.GroupScheduleDuration
	bEnd := bStart + b.GroupScheduleDuration
	return aStart < bEnd && bStart < aEnd
}

// ScheduleConflict pairs a foreign group with the slot of ours it collides
// with.
type ScheduleConflict struct {
	GroupID   uuid.UUID                     `json:"group_id"`
	GroupName string                        `json:"group_name"`
	OurSlot   groupModel.GroupScheduleModel `json:"our_slot"`
	TheirSlot groupModel.GroupScheduleModel `json:"their_slot"`
}

/* =========================================================
   DB operations
========================================================= */

// LoadSchedule returns a group's slots in insertion order.
func LoadSchedule(db *gorm.DB, groupID uuid.UUID) ([]groupModel.GroupScheduleModel, error) {
	var slots []groupModel.GroupScheduleModel
	if err := db.
		Where("group_schedule_group_id = ?", groupID).
		Order("group_schedule_created_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// ReplaceSchedule persists a group's full slot set by deleting and
// reinserting; slots carry no identity across edits, so the set is never
// diffed. Durations are rederived before insert.
func ReplaceSchedule(tx *gorm.DB, groupID uuid.UUID, slots []groupModel.GroupScheduleModel) error {
	if err := tx.
		Where("group_schedule_group_id = ?", groupID).
		Delete(&groupModel.GroupScheduleModel{}).Error; err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}
	for i := range slots {
		slots[i].GroupScheduleID = uuid.Nil
		slots[i].GroupScheduleGroupID = groupID
		slots[i].RecomputeDuration()
	}
	return tx.Create(&slots).Error
}

// FindScheduleConflicts scans a teacher's other active groups for slots
// overlapping the given set. Advisory only: the console shows the collisions
// but saving is never blocked.
func FindScheduleConflicts(db *gorm.DB, teacherID, groupID uuid.UUID, slots []groupModel.GroupScheduleModel) ([]ScheduleConflict, error) {
	var others []groupModel.GroupModel
	if err := db.
		Where("group_teacher_id = ? AND group_id <> ? AND group_is_active = TRUE", teacherID, groupID).
		Find(&others).Error; err != nil {
		return nil, err
	}
	if len(others) == 0 {
		return []ScheduleConflict{}, nil
	}

	otherIDs := make([]uuid.UUID, 0, len(others))
	nameByID := make(map[uuid.UUID]string, len(others))
	for _, g := range others {
		otherIDs = append(otherIDs, g.GroupID)
		nameByID[g.GroupID] = g.GroupName
	}

	var theirSlots []groupModel.GroupScheduleModel
	if err := db.
		Where("group_schedule_group_id IN ?", otherIDs).
		Find(&theirSlots).Error; err != nil {
		return nil, err
	}

	conflicts := []ScheduleConflict{}
	for i := range slots {
		for j := range theirSlots {
			if SlotsOverlap(&slots[i], &theirSlots[j]) {
				conflicts = append(conflicts, ScheduleConflict{
					GroupID:   theirSlots[j].GroupScheduleGroupID,
					GroupName: nameByID[theirSlots[j].GroupScheduleGroupID],
					OurSlot:   slots[i],
					TheirSlot: theirSlots[j],
				})
			}
		}
	}
	return conflicts, nil
}
