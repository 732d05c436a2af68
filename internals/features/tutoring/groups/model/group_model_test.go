package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFreeSeats(t *testing.T) {
	g := GroupModel{GroupMaxStudents: 10, GroupCurrentStudents: 7}
	assert.Equal(t, 3, g.FreeSeats())
	assert.False(t, g.IsFull())

	g.GroupCurrentStudents = 10
	assert.Equal(t, 0, g.FreeSeats())
	assert.True(t, g.IsFull())

	// counter drift beyond max still reports zero free seats
	g.GroupCurrentStudents = 12
	assert.Equal(t, 0, g.FreeSeats())
	assert.True(t, g.IsFull())
}

func TestGroupEnsureConsistency(t *testing.T) {
	valid := GroupModel{
		GroupName:            "مجموعة الكيمياء",
		GroupMaxStudents:     8,
		GroupCurrentStudents: 3,
		GroupMonthlyPrice:    200,
	}
	require.NoError(t, valid.ensureConsistency())

	tests := []struct {
		name   string
		mutate func(*GroupModel)
	}{
		{name: "zero capacity", mutate: func(g *GroupModel) { g.GroupMaxStudents = 0 }},
		{name: "negative counter", mutate: func(g *GroupModel) { g.GroupCurrentStudents = -1 }},
		{name: "counter above capacity", mutate: func(g *GroupModel) { g.GroupCurrentStudents = 9 }},
		{name: "negative price", mutate: func(g *GroupModel) { g.GroupMonthlyPrice = -1 }},
		{name: "end before start", mutate: func(g *GroupModel) {
			start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			end := start.AddDate(0, -1, 0)
			g.GroupStartDate = &start
			g.GroupEndDate = &end
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			assert.Error(t, g.ensureConsistency())
		})
	}
}
