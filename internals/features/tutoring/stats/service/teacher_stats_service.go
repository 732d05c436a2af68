package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	statsModel "mudarris_backend/internals/features/tutoring/stats/model"
)

// StatsSource captures the counts the summary row is derived from.
type StatsSource struct {
	ActiveStudents    int64
	ActiveGroups      int64
	CompletedSessions int64
	PaidRevenue       int64
}

// BuildTeacherStats maps authoritative counts onto the summary row. Pure, so
// the derivation is testable without a database; running it twice over the
// same source yields the same row.
func BuildTeacherStats(teacherID uuid.UUID, src StatsSource) statsModel.TeacherStatsModel {
	return statsModel.TeacherStatsModel{
		TeacherStatsTeacherID:     teacherID,
		TeacherStatsTotalStudents: int(src.ActiveStudents),
		TeacherStatsTotalGroups:   int(src.ActiveGroups),
		TeacherStatsTotalSessions: int(src.CompletedSessions),
		TeacherStatsTotalRevenue:  int(src.PaidRevenue),
	}
}

// RecomputeTeacherStats rederives a teacher's counters from students, groups,
// sessions and payments and upserts the summary row. Called inside the same
// transaction as the mutation that made the counters stale.
func RecomputeTeacherStats(tx *gorm.DB, teacherID uuid.UUID) error {
	var src StatsSource

	if err := tx.Table("students").
		Where("student_teacher_id = ? AND student_is_active = TRUE AND student_deleted_at IS NULL", teacherID).
		Count(&src.ActiveStudents).Error; err != nil {
		return err
	}
	if err := tx.Table("groups").
		Where("group_teacher_id = ? AND group_is_active = TRUE AND group_deleted_at IS NULL", teacherID).
		Count(&src.ActiveGroups).Error; err != nil {
		return err
	}
	if err := tx.Table("class_sessions").
		Where("class_session_teacher_id = ? AND class_session_status = 'completed' AND class_session_deleted_at IS NULL", teacherID).
		Count(&src.CompletedSessions).Error; err != nil {
		return err
	}
	if err := tx.Table("payments").
		Select("COALESCE(SUM(payment_amount), 0)").
		Where("payment_teacher_id = ? AND payment_status = 'paid' AND payment_deleted_at IS NULL", teacherID).
		Scan(&src.PaidRevenue).Error; err != nil {
		return err
	}

	row := BuildTeacherStats(teacherID, src)
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "teacher_stats_teacher_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"teacher_stats_total_students",
			"teacher_stats_total_groups",
			"teacher_stats_total_sessions",
			"teacher_stats_total_revenue",
			"teacher_stats_recalculated_at",
		}),
	}).Create(&row).Error
}
