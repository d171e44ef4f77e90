// Package model provides domain types for the call log module.
package model

import "time"

// CallEvent represents one recorded constituent call.
// Matches the call_events table schema.
type CallEvent struct {
	ID             uint      `gorm:"primaryKey;autoIncrement;column:id"                               json:"id"`
	LegislatorName string    `gorm:"column:legislator_name;type:varchar(255);not null"                json:"legislator_name"`
	BillName       string    `gorm:"column:bill_name;type:varchar(64);index:idx_call_events_bill"    json:"bill_name,omitempty"`
	Issue          string    `gorm:"column:issue;type:varchar(255)"                                   json:"issue,omitempty"`
	Outcome        string    `gorm:"column:outcome;type:varchar(32);not null;default:'completed'"     json:"outcome"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()"        json:"created_at"`
}

// TableName specifies the table name for GORM.
func (CallEvent) TableName() string {
	return "call_events"
}

// CallCounter is the single-row running total of recorded calls.
type CallCounter struct {
	ID    uint  `gorm:"primaryKey;column:id"         json:"-"`
	Count int64 `gorm:"column:count;not null"        json:"count"`
}

// TableName specifies the table name for GORM.
func (CallCounter) TableName() string {
	return "call_counter"
}

// Call outcomes accepted by the API.
const (
	OutcomeCompleted = "completed"
	OutcomeVoicemail = "voicemail"
	OutcomeNoAnswer  = "no_answer"
)

// ValidOutcome reports whether the outcome label is one the API accepts.
func ValidOutcome(outcome string) bool {
	switch outcome {
	case OutcomeCompleted, OutcomeVoicemail, OutcomeNoAnswer:
		return true
	}
	return false
}
