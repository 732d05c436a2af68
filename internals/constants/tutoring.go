package constants

// WeekDays is the fixed set of day labels a schedule slot may use, in the
// order the console displays them (week starts on Saturday).
var WeekDays = []string{
	"السبت",
	"الأحد",
	"الاثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
}

// IsWeekDay reports whether label belongs to the fixed 7-value day set.
func IsWeekDay(label string) bool {
	for _, d := range WeekDays {
		if d == label {
			return true
		}
	}
	return false
}

// DefaultSlotDuration is the fallback duration (minutes) used when a slot's
// end time is at or before its start time.
const DefaultSlotDuration = 60

// Grade level markers recognized by the student-code generator.
const (
	GradeLevelPrimary     = "ابتدائي"
	GradeLevelPreparatory = "إعدادي"
	GradeLevelSecondary   = "ثانوي"
)

// Ordinal words appearing in grade labels, mapped to their year digit.
var GradeOrdinals = map[string]int{
	"الأول":  1,
	"الثاني": 2,
	"الثالث": 3,
	"الرابع": 4,
	"الخامس": 5,
	"السادس": 6,
}
