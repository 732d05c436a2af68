package service

import (
	"fmt"
	"math/rand"
	"strings"

	"mudarris_backend/internals/constants"
)

// GenerateStudentCode builds the printable code for a new student:
// first 3 letters of the first name, upper-cased, then a level marker taken
// from the grade label (ابتدائي→P, إعدادي→M, ثانوي→S, otherwise G), then the
// year digit parsed from the grade's ordinal word (الأول→1 … السادس→6, else
// 0), then a random 3-digit suffix. No uniqueness check is performed;
// collisions are tolerated the same way the console always has.
func GenerateStudentCode(name, grade string) string {
	first := firstWord(name)
	runes := []rune(first)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	prefix := strings.ToUpper(string(runes))

	level := "G"
	switch {
	case strings.Contains(grade, constants.GradeLevelPrimary):
		level = "P"
	case strings.Contains(grade, constants.GradeLevelPreparatory):
		level = "M"
	case strings.Contains(grade, constants.GradeLevelSecondary):
		level = "S"
	}

	year := 0
	for word, digit := range constants.GradeOrdinals {
		if strings.Contains(grade, word) {
			year = digit
			break
		}
	}

	return fmt.Sprintf("%s%s%d%03d", prefix, level, year, rand.Intn(1000))
}

func firstWord(s string) string {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
