package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
	studentModel "mudarris_backend/internals/features/tutoring/students/model"
)

func makeGroup(max, current int) *groupModel.GroupModel {
	return &groupModel.GroupModel{
		GroupID:              uuid.New(),
		GroupName:            "مجموعة الفيزياء أ",
		GroupGrade:           "الصف الأول الثانوي",
		GroupSubject:         "فيزياء",
		GroupMaxStudents:     max,
		GroupCurrentStudents: current,
		GroupIsActive:        true,
	}
}

func TestPlanEnrollment(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		group     *groupModel.GroupModel
		members   map[uuid.UUID]bool
		requested []uuid.UUID
		want      []uuid.UUID
		wantFree  int // expected FreeSeats in CapacityExceededError, -1 = no error
	}{
		{
			name:      "fits exactly",
			group:     makeGroup(5, 3),
			requested: []uuid.UUID{a, b},
			want:      []uuid.UUID{a, b},
			wantFree:  -1,
		},
		{
			name:      "batch over capacity rejected whole",
			group:     makeGroup(5, 3),
			requested: []uuid.UUID{a, b, c},
			wantFree:  2,
		},
		{
			name:      "full group rejects single",
			group:     makeGroup(2, 2),
			requested: []uuid.UUID{a},
			wantFree:  0,
		},
		{
			name:      "duplicates in request counted once",
			group:     makeGroup(4, 3),
			requested: []uuid.UUID{a, a, a},
			want:      []uuid.UUID{a},
			wantFree:  -1,
		},
		{
			name:      "already enrolled skipped not double-counted",
			group:     makeGroup(3, 2),
			members:   map[uuid.UUID]bool{a: true},
			requested: []uuid.UUID{a, b},
			want:      []uuid.UUID{b},
			wantFree:  -1,
		},
		{
			name:      "all already enrolled is a no-op",
			group:     makeGroup(2, 2),
			members:   map[uuid.UUID]bool{a: true, b: true},
			requested: []uuid.UUID{a, b},
			want:      []uuid.UUID{},
			wantFree:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanEnrollment(tt.group, tt.members, tt.requested)

			if tt.wantFree >= 0 {
				var capErr *CapacityExceededError
				require.True(t, errors.As(err, &capErr), "expected CapacityExceededError, got %v", err)
				assert.Equal(t, tt.wantFree, capErr.FreeSeats)
				return
			}

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestPlanEnrollmentInactiveGroup(t *testing.T) {
	group := makeGroup(5, 0)
	group.GroupIsActive = false

	_, err := PlanEnrollment(group, nil, []uuid.UUID{uuid.New()})
	require.ErrorIs(t, err, ErrGroupInactive)
}

func TestPlanRemoval(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	members := map[uuid.UUID]bool{a: true, b: true}

	require.True(t, PlanRemoval(members, a))
	assert.Len(t, members, 1)
	assert.True(t, members[b])

	// removing the same student again changes nothing
	require.False(t, PlanRemoval(members, a))
	assert.Len(t, members, 1)

	// removing someone who was never a member changes nothing
	require.False(t, PlanRemoval(members, uuid.New()))
	assert.Len(t, members, 1)
	assert.True(t, members[b])
}

// The membership set and the occupancy counter must agree after any
// interleaving of enrollments and removals, and never exceed capacity.
func TestMembershipCounterConsistency(t *testing.T) {
	group := makeGroup(3, 0)
	members := map[uuid.UUID]bool{}
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	apply := func(requested ...uuid.UUID) error {
		newIDs, err := PlanEnrollment(group, members, requested)
		if err != nil {
			return err
		}
		for _, id := range newIDs {
			members[id] = true
		}
		group.GroupCurrentStudents = len(members)
		return nil
	}
	remove := func(id uuid.UUID) {
		PlanRemoval(members, id)
		group.GroupCurrentStudents = len(members)
	}
	check := func() {
		t.Helper()
		assert.Equal(t, len(members), group.GroupCurrentStudents)
		assert.LessOrEqual(t, group.GroupCurrentStudents, group.GroupMaxStudents)
	}

	require.NoError(t, apply(a, b))
	check()
	require.NoError(t, apply(c))
	check()

	// full: a fourth student is rejected and nothing moves
	err := apply(d)
	var capErr *CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	check()

	remove(b)
	check()
	remove(b) // repeat removal is a no-op
	check()
	assert.Equal(t, 2, group.GroupCurrentStudents)

	// freed seat can be filled again
	require.NoError(t, apply(d))
	check()
	assert.Equal(t, 3, group.GroupCurrentStudents)
}

func TestUnknownIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name      string
		requested []uuid.UUID
		owned     []uuid.UUID
		want      []uuid.UUID
	}{
		{
			name:      "all owned",
			requested: []uuid.UUID{a, b},
			owned:     []uuid.UUID{a, b, c},
			want:      nil,
		},
		{
			name:      "one stranger",
			requested: []uuid.UUID{a, c},
			owned:     []uuid.UUID{a},
			want:      []uuid.UUID{c},
		},
		{
			name:      "stranger listed once despite duplicates",
			requested: []uuid.UUID{c, c, c},
			owned:     []uuid.UUID{a},
			want:      []uuid.UUID{c},
		},
		{
			name:      "nil ids ignored",
			requested: []uuid.UUID{uuid.Nil, a},
			owned:     []uuid.UUID{a},
			want:      nil,
		},
		{
			name:      "nothing owned",
			requested: []uuid.UUID{a, b},
			owned:     nil,
			want:      []uuid.UUID{a, b},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnknownIDs(tt.requested, tt.owned)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestValidateCapacityChange(t *testing.T) {
	group := makeGroup(10, 7)

	require.NoError(t, ValidateCapacityChange(group, 7))
	require.NoError(t, ValidateCapacityChange(group, 20))

	err := ValidateCapacityChange(group, 5)
	var capErr *InvalidCapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 5, capErr.NewMax)
	assert.Equal(t, 7, capErr.CurrentStudents)
}

func makeStudent(name, grade, subject string, active bool) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentID:       uuid.New(),
		StudentName:     name,
		StudentGrade:    grade,
		StudentSubject:  subject,
		StudentIsActive: active,
	}
}

func TestFilterCandidates(t *testing.T) {
	group := makeGroup(5, 2)

	match1 := makeStudent("أحمد محمد", "الصف الأول الثانوي", "فيزياء", true)
	match2 := makeStudent("سارة علي", "الصف الأول الثانوي", "فيزياء", true)
	wrongGrade := makeStudent("خالد حسن", "الصف الثاني الثانوي", "فيزياء", true)
	wrongSubject := makeStudent("منى إبراهيم", "الصف الأول الثانوي", "كيمياء", true)
	inactive := makeStudent("يوسف عادل", "الصف الأول الثانوي", "فيزياء", false)
	enrolled := makeStudent("ليلى سمير", "الصف الأول الثانوي", "فيزياء", true)

	members := map[uuid.UUID]bool{enrolled.StudentID: true}
	pool := []studentModel.StudentModel{match1, match2, wrongGrade, wrongSubject, inactive, enrolled}

	got := FilterCandidates(group, members, pool, "")
	require.Len(t, got, 2)
	// sorted by name
	assert.Equal(t, match1.StudentID, got[0].StudentID)
	assert.Equal(t, match2.StudentID, got[1].StudentID)
}

func TestFilterCandidatesSearch(t *testing.T) {
	group := makeGroup(5, 0)
	s1 := makeStudent("أحمد محمد", group.GroupGrade, group.GroupSubject, true)
	s2 := makeStudent("سارة علي", group.GroupGrade, group.GroupSubject, true)

	got := FilterCandidates(group, nil, []studentModel.StudentModel{s1, s2}, "سارة")
	require.Len(t, got, 1)
	assert.Equal(t, s2.StudentID, got[0].StudentID)
}

func TestFilterCandidatesFullGroupIsEmpty(t *testing.T) {
	group := makeGroup(2, 2)
	s := makeStudent("أحمد محمد", group.GroupGrade, group.GroupSubject, true)

	got := FilterCandidates(group, nil, []studentModel.StudentModel{s}, "")
	assert.Empty(t, got)
}

func TestFilterCandidatesInactiveGroupIsEmpty(t *testing.T) {
	group := makeGroup(5, 0)
	group.GroupIsActive = false
	s := makeStudent("أحمد محمد", group.GroupGrade, group.GroupSubject, true)

	got := FilterCandidates(group, nil, []studentModel.StudentModel{s}, "")
	assert.Empty(t, got)
}
