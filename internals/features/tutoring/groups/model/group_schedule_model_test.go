package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mudarris_backend/internals/constants"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "14:00", want: 840},
		{in: "23:59", want: 1439},
		{in: " 09:30 ", want: 570},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := MinutesOfDay(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "hour and a half", start: "14:00", end: "15:30", want: 90},
		{name: "one hour", start: "18:00", end: "19:00", want: 60},
		{name: "end before start falls back", start: "15:00", end: "14:00", want: constants.DefaultSlotDuration},
		{name: "zero length falls back", start: "14:00", end: "14:00", want: constants.DefaultSlotDuration},
		{name: "garbage start falls back", start: "xx:yy", end: "15:00", want: constants.DefaultSlotDuration},
		{name: "missing end falls back", start: "14:00", end: "", want: constants.DefaultSlotDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeDuration(tt.start, tt.end))
		})
	}
}

func TestRecomputeDuration(t *testing.T) {
	slot := GroupScheduleModel{
		GroupScheduleDay:       constants.WeekDays[0],
		GroupScheduleStartTime: "16:00",
		GroupScheduleEndTime:   "18:00",
	}
	slot.RecomputeDuration()
	assert.Equal(t, 120, slot.GroupScheduleDuration)

	slot.GroupScheduleEndTime = "15:00"
	slot.RecomputeDuration()
	assert.Equal(t, constants.DefaultSlotDuration, slot.GroupScheduleDuration)
}

func TestScheduleEnsureConsistencyRejectsBadDay(t *testing.T) {
	slot := GroupScheduleModel{
		GroupScheduleDay:       "Monday",
		GroupScheduleStartTime: "14:00",
		GroupScheduleEndTime:   "15:00",
		GroupScheduleDuration:  60,
	}
	require.Error(t, slot.ensureConsistency())

	slot.GroupScheduleDay = "الاثنين"
	require.NoError(t, slot.ensureConsistency())
}
