package entity

import "time"

// Webinar is a scheduled live session sold alongside courses.
type Webinar struct {
	ID              string        `json:"_id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Description     string        `json:"description"`
	Host            string        `json:"host"`
	ScheduledAt     time.Time     `json:"scheduledAt"`
	DurationMinutes int           `json:"durationMinutes"`
	Price           float64       `json:"price"`
	Status          PublishStatus `json:"status"`
	MeetingURL      string        `json:"meetingUrl"`
	Thumbnail       string        `json:"thumbnail"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
