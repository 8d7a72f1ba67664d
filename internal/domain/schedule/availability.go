package schedule

import "time"

type AvailabilityInput struct {
	ArtistID  string
	ServiceID string
	Date      time.Time
}

type DailySlotCount struct {
	Date      string `json:"date"`
	SlotCount int    `json:"slot_count"`
}
