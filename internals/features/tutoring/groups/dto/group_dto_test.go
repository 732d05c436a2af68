package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "mudarris_backend/internals/helpers"
)

func TestScheduleSlotRequestValidation(t *testing.T) {
	t.Run("valid slot passes", func(t *testing.T) {
		req := ScheduleSlotRequest{
			GroupScheduleDay:       "السبت",
			GroupScheduleStartTime: "14:00",
			GroupScheduleEndTime:   "15:30",
		}
		req.Normalize()
		assert.Nil(t, helper.ValidateStruct(&req))
	})

	t.Run("foreign day label rejected", func(t *testing.T) {
		req := ScheduleSlotRequest{
			GroupScheduleDay:       "Monday",
			GroupScheduleStartTime: "14:00",
			GroupScheduleEndTime:   "15:00",
		}
		req.Normalize()
		fieldErrs := helper.ValidateStruct(&req)
		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "GroupScheduleDay")
	})

	t.Run("out of range times rejected", func(t *testing.T) {
		req := ScheduleSlotRequest{
			GroupScheduleDay:       "السبت",
			GroupScheduleStartTime: "99:99",
			GroupScheduleEndTime:   "88:88",
		}
		req.Normalize()
		fieldErrs := helper.ValidateStruct(&req)
		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "GroupScheduleStartTime")
		assert.Contains(t, fieldErrs, "GroupScheduleEndTime")
	})

	t.Run("non-time strings rejected", func(t *testing.T) {
		req := ScheduleSlotRequest{
			GroupScheduleDay:       "الخميس",
			GroupScheduleStartTime: "14-00",
			GroupScheduleEndTime:   "soon!",
		}
		req.Normalize()
		fieldErrs := helper.ValidateStruct(&req)
		require.NotNil(t, fieldErrs)
		assert.Contains(t, fieldErrs, "GroupScheduleStartTime")
		assert.Contains(t, fieldErrs, "GroupScheduleEndTime")
	})
}
