package models

import "time"

type Event struct {
	ID           int    `json:"id" example:"1"`
	Name         string `json:"name" example:"Bondi Beach Spring Cleanup"`
	Date         string `json:"date" example:"2025-01-15"`
	DateLabel    string `json:"dateLabel,omitempty" example:"15 Jan 2025"`
	Location     string `json:"location" example:"📍 Bondi Beach, Sydney"`
	Participants int    `json:"participants" example:"24"`
	Description  string `json:"description"`
}

type Crew struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"Beach Warriors"`
	Icon     string `json:"icon" example:"🏄"`
	Members  int    `json:"members" example:"12"`
	Cleanups int    `json:"cleanups" example:"8"`
	Location string `json:"location" example:"Bondi, Sydney"`
}

type Signup struct {
	ID        string    `json:"id" example:"4f9d2c1e-8a0b-4c55-9b52-0c4cf1c0e8b7"`
	Name      string    `json:"name" example:"Alex Tan"`
	Email     string    `json:"email" example:"alex@example.com"`
	Beach     string    `json:"beach" example:"Pasir Ris"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	ActionJoinEvent = "join_event"
	ActionJoinCrew  = "join_crew"
)

type UserAction struct {
	Action    string    `json:"action" example:"join_event"`
	ItemID    int       `json:"itemId" example:"1"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats are the landing page hero counters.
type Stats struct {
	Volunteers int `json:"volunteers" example:"130"`
	Cleanups   int `json:"cleanups" example:"28"`
	Crews      int `json:"crews" example:"3"`
	Events     int `json:"events" example:"3"`
}
