package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStudentCode(t *testing.T) {
	tests := []struct {
		name       string
		student    string
		grade      string
		wantPrefix string
	}{
		{
			name:       "secondary third year",
			student:    "أحمد محمد",
			grade:      "الصف الثالث الثانوي",
			wantPrefix: "أحمS3",
		},
		{
			name:       "primary first year",
			student:    "سارة علي",
			grade:      "الصف الأول الابتدائي",
			wantPrefix: "سارP1",
		},
		{
			name:       "preparatory second year",
			student:    "خالد حسن",
			grade:      "الصف الثاني الإعدادي",
			wantPrefix: "خالM2",
		},
		{
			name:       "unknown level and ordinal",
			student:    "منى",
			grade:      "تمهيدي",
			wantPrefix: "منىG0",
		},
		{
			name:       "short first name kept whole",
			student:    "نور الدين",
			grade:      "الصف السادس الابتدائي",
			wantPrefix: "نورP6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GenerateStudentCode(tt.student, tt.grade)
			assert.True(t, strings.HasPrefix(code, tt.wantPrefix),
				"code %q should start with %q", code, tt.wantPrefix)

			// random 3-digit suffix
			suffix := strings.TrimPrefix(code, tt.wantPrefix)
			require.Len(t, suffix, 3)
			for _, r := range suffix {
				assert.True(t, r >= '0' && r <= '9', "suffix %q must be digits", suffix)
			}
		})
	}
}

func TestGenerateStudentCodeEmptyName(t *testing.T) {
	code := GenerateStudentCode("", "الصف الأول الثانوي")
	assert.True(t, strings.HasPrefix(code, "S1"), "code %q", code)
}
