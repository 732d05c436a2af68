package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
)

/* =========================================================
   Pure planning core. The DB wrappers below run these under
   a row lock on the group so the capacity check and the
   counter update are one atomic step.
========================================================= */

// PlanEnrollment decides which of the requested student ids actually get a new
// membership row. Requested ids are deduped and already-enrolled students are
// skipped (enrolling a member twice is a no-op). If the remaining batch does
// not fit, the whole batch is rejected with CapacityExceededError carrying the
// exact free-seat count and nothing is applied.
func PlanEnrollment(group *groupModel.GroupModel, memberIDs map[uuid.UUID]bool, requested []uuid.UUID) ([]uuid.UUID, error) {
	if !group.GroupIsActive {
		return nil, ErrGroupInactive
	}

	seen := make(map[uuid.UUID]bool, len(requested))
	newIDs := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if id == uuid.Nil || seen[id] || memberIDs[id] {
			continue
		}
		seen[id] = true
		newIDs = append(newIDs, id)
	}

	if free := group.FreeSeats(); len(newIDs) > free {
		return nil, &CapacityExceededError{FreeSeats: free, Requested: len(newIDs)}
	}
	return newIDs, nil
}

// PlanRemoval drops a student from the membership set, mutating it in place.
// Removing a non-member is a no-op and reports false, so repeating a removal
// never moves the counter.
func PlanRemoval(memberIDs map[uuid.UUID]bool, studentID uuid.UUID) bool {
	if !memberIDs[studentID] {
		return false
	}
	delete(memberIDs, studentID)
	return true
}

// UnknownIDs returns the requested ids (deduped, nil skipped) missing from
// the owned set. A batch naming any of them is rejected outright rather than
// silently shrunk.
func UnknownIDs(requested []uuid.UUID, owned []uuid.UUID) []uuid.UUID {
	ownedSet := make(map[uuid.UUID]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}
	seen := make(map[uuid.UUID]bool, len(requested))
	var missing []uuid.UUID
	for _, id := range requested {
		if id == uuid.Nil || seen[id] || ownedSet[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, id)
	}
	return missing
}

// ValidateCapacityChange guards shrinking a group below its occupancy.
func ValidateCapacityChange(group *groupModel.GroupModel, newMax int) error {
	if newMax < group.GroupCurrentStudents {
		return &InvalidCapacityError{NewMax: newMax, CurrentStudents: group.GroupCurrentStudents}
	}
	return nil
}

// FilterCandidates applies the eligibility filter used when proposing
// students for a group: same grade, same subject, active, not already a
// member, optional case-insensitive name search. A full or inactive group has
// no candidates regardless of how well students match. Result is sorted by
// name for the picker; ordering is a usability choice, not a contract.
func FilterCandidates(group *groupModel.GroupModel, memberIDs map[uuid.UUID]bool, students []studentModel.StudentModel, search string) []studentModel.StudentModel {
	out := []studentModel.StudentModel{}
	if group.IsFull() || !group.GroupIsActive {
		return out
	}

	search = strings.ToLower(strings.TrimSpace(search))
	for _, s := range students {
		if !s.StudentIsActive ||
			s.StudentGrade != group.GroupGrade ||
			s.StudentSubject != group.GroupSubject ||
			memberIDs[s.StudentID] {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.StudentName), search) {
			continue
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StudentName < out[j].StudentName
	})
	return out
}

/* =========================================================
   DB operations
========================================================= */

// LockGroupForUpdate loads a teacher's group under FOR UPDATE so concurrent
// membership mutations on the same group serialize.
func LockGroupForUpdate(tx *gorm.DB, teacherID, groupID uuid.UUID) (*groupModel.GroupModel, error) {
	var group groupModel.GroupModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("group_id = ? AND group_teacher_id = ?", groupID, teacherID).
		First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// LoadMemberIDs returns the current membership set of a group.
func LoadMemberIDs(tx *gorm.DB, groupID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := tx.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_group_id = ?", groupID).
		Pluck("group_student_student_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// RecountGroupStudents rederives group_current_students from the membership
// rows and persists it on the locked group.
func RecountGroupStudents(tx *gorm.DB, group *groupModel.GroupModel) error {
	var count int64
	if err := tx.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_group_id = ?", group.GroupID).
		Count(&count).Error; err != nil {
		return err
	}
	group.GroupCurrentStudents = int(count)
	return tx.Model(group).
		Update("group_current_students", group.GroupCurrentStudents).Error
}

// EnrollStudents applies an all-or-nothing enrollment batch inside tx. The
// caller owns the transaction; any error leaves the stored state untouched.
func EnrollStudents(tx *gorm.DB, teacherID, groupID uuid.UUID, studentIDs []uuid.UUID) (*groupModel.GroupModel, []uuid.UUID, error) {
	group, err := LockGroupForUpdate(tx, teacherID, groupID)
	if err != nil {
		return nil, nil, err
	}

	memberIDs, err := LoadMemberIDs(tx, groupID)
	if err != nil {
		return nil, nil, err
	}

	// Only students belonging to this teacher may be enrolled.
	var owned []uuid.UUID
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_teacher_id = ? AND student_id IN ?", teacherID, studentIDs).
		Pluck("student_id", &owned).Error; err != nil {
		return nil, nil, err
	}

	if missing := UnknownIDs(studentIDs, owned); len(missing) > 0 {
		return nil, nil, &UnknownStudentsError{StudentIDs: missing}
	}

	newIDs, err := PlanEnrollment(group, memberIDs, owned)
	if err != nil {
		return nil, nil, err
	}

	if len(newIDs) > 0 {
		rows := make([]groupModel.GroupStudentModel, 0, len(newIDs))
		for _, sid := range newIDs {
			rows = append(rows, groupModel.GroupStudentModel{
				GroupStudentGroupID:   groupID,
				GroupStudentStudentID: sid,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return nil, nil, err
		}
	}

	if err := RecountGroupStudents(tx, group); err != nil {
		return nil, nil, err
	}
	return group, newIDs, nil
}

// RemoveStudent drops a membership row. Removing a non-member is a no-op that
// leaves the counter untouched.
func RemoveStudent(tx *gorm.DB, teacherID, groupID, studentID uuid.UUID) (*groupModel.GroupModel, error) {
	group, err := LockGroupForUpdate(tx, teacherID, groupID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := LoadMemberIDs(tx, groupID)
	if err != nil {
		return nil, err
	}
	if !PlanRemoval(memberIDs, studentID) {
		return group, nil
	}

	if err := tx.
		Where("group_student_group_id = ? AND group_student_student_id = ?", groupID, studentID).
		Delete(&groupModel.GroupStudentModel{}).Error; err != nil {
		return nil, err
	}

	if err := RecountGroupStudents(tx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// RemoveStudentEverywhere drops a student from all their groups and fixes the
// affected counters. Used when a student is deleted.
func RemoveStudentEverywhere(tx *gorm.DB, teacherID, studentID uuid.UUID) error {
	var groupIDs []uuid.UUID
	if err := tx.Model(&groupModel.GroupStudentModel{}).
		Where("group_student_student_id = ?", studentID).
		Pluck("group_student_group_id", &groupIDs).Error; err != nil {
		return err
	}

	for _, gid := range groupIDs {
		if _, err := RemoveStudent(tx, teacherID, gid, studentID); err != nil {
			return err
		}
	}
	return nil
}
