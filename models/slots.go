package models

import "fmt"

// RequiredSlots lists the booking fields in the order the assistant asks for them.
var RequiredSlots = []string{"name", "email", "phone", "booking_type", "date", "time"}

// SlotSet is the evolving structured booking request for one session.
// Pointer fields distinguish "not yet provided" (nil) from a provided value;
// an empty string is never stored.
type SlotSet struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	BookingType *string `json:"booking_type"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Confirmed   bool    `json:"confirmation"`
}

// Get returns the value of a named slot and whether it is set.
func (s *SlotSet) Get(field string) (string, bool) {
	ptr := s.fieldPtr(field)
	if ptr == nil || *ptr == nil || **ptr == "" {
		return "", false
	}
	return **ptr, true
}

func (s *SlotSet) fieldPtr(field string) **string {
	switch field {
	case "name":
		return &s.Name
	case "email":
		return &s.Email
	case "phone":
		return &s.Phone
	case "booking_type":
		return &s.BookingType
	case "date":
		return &s.Date
	case "time":
		return &s.Time
	}
	return nil
}

// Merge folds a freshly extracted partial into the stored set. Non-null fields
// overwrite (last write wins); null fields leave the stored value untouched.
func (s *SlotSet) Merge(partial SlotSet) {
	for _, field := range RequiredSlots {
		src := partial.fieldPtr(field)
		if src != nil && *src != nil && **src != "" {
			dst := s.fieldPtr(field)
			v := **src
			*dst = &v
		}
	}
	if partial.Confirmed {
		s.Confirmed = true
	}
}

// FirstMissing returns the first required slot without a value, in priority
// order, or "" when the set is complete.
func (s *SlotSet) FirstMissing() string {
	for _, field := range RequiredSlots {
		if _, ok := s.Get(field); !ok {
			return field
		}
	}
	return ""
}

// Complete reports whether all six required slots hold a value.
func (s *SlotSet) Complete() bool {
	return s.FirstMissing() == ""
}

// Empty reports whether no slot has been filled yet. An empty set means the
// session has no booking in progress.
func (s *SlotSet) Empty() bool {
	for _, field := range RequiredSlots {
		if _, ok := s.Get(field); ok {
			return false
		}
	}
	return !s.Confirmed
}

// Summary renders the five informational fields for the confirmation prompt.
func (s *SlotSet) Summary() string {
	name, _ := s.Get("name")
	email, _ := s.Get("email")
	bookingType, _ := s.Get("booking_type")
	date, _ := s.Get("date")
	timeOfDay, _ := s.Get("time")
	return fmt.Sprintf("Booking Summary:\nName: %s\nEmail: %s\nService: %s\nDate: %s\nTime: %s",
		name, email, bookingType, date, timeOfDay)
}
