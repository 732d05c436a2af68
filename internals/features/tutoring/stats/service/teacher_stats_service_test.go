package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildTeacherStats(t *testing.T) {
	teacherID := uuid.New()
	src := StatsSource{
		ActiveStudents:    12,
		ActiveGroups:      3,
		CompletedSessions: 48,
		PaidRevenue:       9600,
	}

	got := BuildTeacherStats(teacherID, src)

	assert.Equal(t, teacherID, got.TeacherStatsTeacherID)
	assert.Equal(t, 12, got.TeacherStatsTotalStudents)
	assert.Equal(t, 3, got.TeacherStatsTotalGroups)
	assert.Equal(t, 48, got.TeacherStatsTotalSessions)
	assert.Equal(t, 9600, got.TeacherStatsTotalRevenue)
}

func TestBuildTeacherStatsIdempotent(t *testing.T) {
	teacherID := uuid.New()
	src := StatsSource{ActiveStudents: 5, ActiveGroups: 2}

	first := BuildTeacherStats(teacherID, src)
	second := BuildTeacherStats(teacherID, src)
	assert.Equal(t, first, second)
}

func TestBuildTeacherStatsZeroSource(t *testing.T) {
	got := BuildTeacherStats(uuid.New(), StatsSource{})
	assert.Zero(t, got.TeacherStatsTotalStudents)
	assert.Zero(t, got.TeacherStatsTotalGroups)
	assert.Zero(t, got.TeacherStatsTotalSessions)
	assert.Zero(t, got.TeacherStatsTotalRevenue)
}
