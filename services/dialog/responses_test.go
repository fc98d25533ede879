package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ISO timestamp with offset",
			input:    "2063-05-04T10:00:00+08:00",
			expected: "04 May 2063",
		},
		{
			name:     "ISO timestamp UTC",
			input:    "2024-12-25T00:00:00Z",
			expected: "25 December 2024",
		},
		{
			name:     "unparseable text passes through",
			input:    "not-a-date",
			expected: "not-a-date",
		},
		{
			name:     "bare calendar date passes through",
			input:    "2063-05-04",
			expected: "2063-05-04",
		},
		{
			name:     "empty string passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestSetLanguagePreference(t *testing.T) {
	t.Run("scalar language", func(t *testing.T) {
		reply := SetLanguagePreference("Japanese")
		assert.Contains(t, reply, "Japanese-speaking guide")
	})

	t.Run("list uses first element only", func(t *testing.T) {
		reply := SetLanguagePreference([]interface{}{"English", "Chinese"})
		assert.Contains(t, reply, "English-speaking guide")
		assert.NotContains(t, reply, "Chinese")
	})
}

func TestGetGuideDuration(t *testing.T) {
	t.Run("first duration entity formats as amount unit", func(t *testing.T) {
		reply := GetGuideDuration([]interface{}{
			map[string]interface{}{"amount": float64(5), "unit": "days"},
		})
		assert.Contains(t, reply, "5 days")
		assert.Contains(t, reply, "Understood")
	})

	t.Run("only first entity is used", func(t *testing.T) {
		reply := GetGuideDuration([]interface{}{
			map[string]interface{}{"amount": float64(3), "unit": "days"},
			map[string]interface{}{"amount": float64(2), "unit": "weeks"},
		})
		assert.Contains(t, reply, "3 days")
		assert.NotContains(t, reply, "2 weeks")
	})

	t.Run("missing amount defaults to zero", func(t *testing.T) {
		reply := GetGuideDuration([]interface{}{
			map[string]interface{}{"unit": "days"},
		})
		assert.Contains(t, reply, "0 days")
	})

	t.Run("empty list asks for clarification", func(t *testing.T) {
		reply := GetGuideDuration([]interface{}{})
		assert.Contains(t, reply, "couldn't understand the duration")
		assert.NotContains(t, reply, "Understood")
	})

	t.Run("non-list asks for clarification", func(t *testing.T) {
		reply := GetGuideDuration("5 days")
		assert.Contains(t, reply, "couldn't understand the duration")
	})
}

func TestCheckTourGuideAvailability(t *testing.T) {
	reply := CheckTourGuideAvailability("2063-05-04T10:00:00+08:00")
	assert.Contains(t, reply, "04 May 2063")
	assert.Contains(t, reply, "duration of the tour")
}

func TestSendReceipt(t *testing.T) {
	tests := []struct {
		name   string
		person interface{}
	}{
		{name: "scalar name", person: "Ketut"},
		{name: "list of names", person: []interface{}{"Ketut", "Wayan"}},
		{name: "name object", person: map[string]interface{}{"name": "Ketut"}},
		{name: "list of name objects", person: []interface{}{map[string]interface{}{"name": "Ketut"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := SendReceipt("ketut@example.com", tt.person)
			assert.Contains(t, reply, "Thanks Ketut")
			assert.Contains(t, reply, "ketut@example.com")
		})
	}
}

func TestChangeReplies(t *testing.T) {
	assert.Contains(t, ChangeBookingDate("next friday"), "next friday")
	assert.Contains(t, ChangeGuideLanguage("Korean"), "Korean")
}
