package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherStatsModel is the per-teacher summary row. It is never incremented
// in place: RecomputeTeacherStats rederives every counter from the
// authoritative rows and upserts, so drift cannot accumulate.
type TeacherStatsModel struct {
	TeacherStatsTeacherID uuid.UUID `gorm:"type:uuid;primaryKey;column:teacher_stats_teacher_id" json:"teacher_stats_teacher_id"`

	TeacherStatsTotalStudents int `gorm:"not null;default:0;column:teacher_stats_total_students" json:"teacher_stats_total_students"`
	TeacherStatsTotalGroups   int `gorm:"not null;default:0;column:teacher_stats_total_groups" json:"teacher_stats_total_groups"`
	TeacherStatsTotalSessions int `gorm:"not null;default:0;column:teacher_stats_total_sessions" json:"teacher_stats_total_sessions"`
	TeacherStatsTotalRevenue  int `gorm:"not null;default:0;column:teacher_stats_total_revenue" json:"teacher_stats_total_revenue"`

	TeacherStatsRecalculatedAt time.Time `gorm:"column:teacher_stats_recalculated_at;autoUpdateTime" json:"teacher_stats_recalculated_at"`
}

func (TeacherStatsModel) TableName() string { return "teacher_stats" }
