package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackTiers(t *testing.T) {
	cases := []struct {
		percentage int
		message    string
		severity   string
	}{
		{100, "Outstanding! 🎉", "success"},
		{90, "Outstanding! 🎉", "success"},
		{89, "Excellent Work! 👏", "success"},
		{80, "Excellent Work! 👏", "success"},
		{79, "Good Job! 💪", "info"},
		{70, "Good Job! 💪", "info"},
		{69, "Not Bad! 📚", "warning"},
		{60, "Not Bad! 📚", "warning"},
		{59, "Keep Practicing! 🎯", "error"},
		{0, "Keep Practicing! 🎯", "error"},
	}

	for _, tc := range cases {
		fb := Feedback(tc.percentage)
		assert.Equal(t, tc.message, fb.Message, "percentage %d", tc.percentage)
		assert.Equal(t, tc.severity, fb.Severity, "percentage %d", tc.percentage)
		assert.NotEmpty(t, fb.Description)
	}
}
