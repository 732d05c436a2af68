package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	groupModel "mudarris_backend/internals/features/tutoring/groups/model"
)

func slot(day, start string, duration int) *groupModel.GroupScheduleModel {
	return &groupModel.GroupScheduleModel{
		GroupScheduleDay:       day,
		GroupScheduleStartTime: start,
		GroupScheduleDuration:  duration,
	}
}

func TestSlotsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    *groupModel.GroupScheduleModel
		b    *groupModel.GroupScheduleModel
		want bool
	}{
		{
			name: "different days never overlap",
			a:    slot("السبت", "14:00", 60),
			b:    slot("الأحد", "14:00", 60),
			want: false,
		},
		{
			name: "partial overlap",
			a:    slot("السبت", "14:00", 90),
			b:    slot("السبت", "15:00", 60),
			want: true,
		},
		{
			name: "contained window",
			a:    slot("السبت", "14:00", 120),
			b:    slot("السبت", "14:30", 30),
			want: true,
		},
		{
			name: "back to back is not overlap",
			a:    slot("السبت", "14:00", 60),
			b:    slot("السبت", "15:00", 60),
			want: false,
		},
		{
			name: "identical windows",
			a:    slot("الخميس", "18:00", 60),
			b:    slot("الخميس", "18:00", 60),
			want: true,
		},
		{
			name: "unparseable time never overlaps",
			a:    slot("السبت", "xx:00", 60),
			b:    slot("السبت", "14:00", 60),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlotsOverlap(tt.a, tt.b))
			assert.Equal(t, tt.want, SlotsOverlap(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}
