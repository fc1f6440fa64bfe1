package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestMergeOverwritesNonNullOnly(t *testing.T) {
	slots := SlotSet{Time: strPtr("10:00")}
	slots.Merge(SlotSet{Date: strPtr("2024-01-01")})

	date, ok := slots.Get("date")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-01", date)

	timeOfDay, ok := slots.Get("time")
	assert.True(t, ok)
	assert.Equal(t, "10:00", timeOfDay)
}

func TestMergeNullNeverClobbers(t *testing.T) {
	slots := SlotSet{Name: strPtr("Alice")}
	slots.Merge(SlotSet{Name: nil, Email: strPtr("a@example.com")})

	name, ok := slots.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestMergeLastWriteWins(t *testing.T) {
	slots := SlotSet{Date: strPtr("2024-01-01")}
	slots.Merge(SlotSet{Date: strPtr("2024-02-02")})

	date, _ := slots.Get("date")
	assert.Equal(t, "2024-02-02", date)
}

func TestMergeEmptyStringTreatedAsAbsent(t *testing.T) {
	slots := SlotSet{Phone: strPtr("12345")}
	slots.Merge(SlotSet{Phone: strPtr("")})

	phone, ok := slots.Get("phone")
	assert.True(t, ok)
	assert.Equal(t, "12345", phone)
}

func TestFirstMissingFollowsPriorityOrder(t *testing.T) {
	slots := SlotSet{Name: strPtr("A")}
	assert.Equal(t, "email", slots.FirstMissing())

	slots.Merge(SlotSet{Email: strPtr("a@b.c"), Phone: strPtr("1"), BookingType: strPtr("room")})
	assert.Equal(t, "date", slots.FirstMissing())
}

func TestCompleteAndEmpty(t *testing.T) {
	var slots SlotSet
	assert.True(t, slots.Empty())
	assert.False(t, slots.Complete())

	slots.Merge(SlotSet{
		Name:        strPtr("A"),
		Email:       strPtr("a@b.c"),
		Phone:       strPtr("1"),
		BookingType: strPtr("consultation"),
		Date:        strPtr("2024-01-01"),
		Time:        strPtr("10:00"),
	})
	assert.True(t, slots.Complete())
	assert.False(t, slots.Empty())
}

func TestSummaryContainsInformationalFields(t *testing.T) {
	slots := SlotSet{
		Name:        strPtr("Alice"),
		Email:       strPtr("alice@example.com"),
		Phone:       strPtr("555-0100"),
		BookingType: strPtr("consultation"),
		Date:        strPtr("2024-01-01"),
		Time:        strPtr("10:00"),
	}
	summary := slots.Summary()
	assert.Contains(t, summary, "Alice")
	assert.Contains(t, summary, "alice@example.com")
	assert.Contains(t, summary, "consultation")
	assert.Contains(t, summary, "2024-01-01")
	assert.Contains(t, summary, "10:00")
	// Phone is not part of the confirmation summary.
	assert.NotContains(t, summary, "555-0100")
}
