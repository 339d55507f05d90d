package model

import (
	"time"
)

// AllDay is the sentinel stored in the time field for tasks that have no
// specific time-of-day. The scanner never selects them.
const AllDay = "All Day"

type Task struct {
	TaskID        string    `firestore:"taskid,omitempty"`
	Title         string    `firestore:"title,omitempty"`
	Date          string    `firestore:"date,omitempty"` // YYYY-MM-DD
	Time          string    `firestore:"time,omitempty"` // HH:MM (24h) or AllDay
	Completed     bool      `firestore:"completed"`
	Sent          bool      `firestore:"sent"`
	SentAt        time.Time `firestore:"sentat,omitempty"`
	PriorityColor string    `firestore:"prioritycolor,omitempty"`
}
