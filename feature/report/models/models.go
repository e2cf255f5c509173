package models

import "time"

// Event is one client- or server-reported error occurrence loaded from a CSV
// export. Client and server events share this shape and are correlated only
// by ErrorID.
type Event struct {
	// Timestamp is the event time in unix seconds.
	Timestamp int64
	// PlayerID identifies the player who produced the event.
	PlayerID int64
	// EventID identifies the in-game event type.
	EventID int64
	// ErrorID correlates a client- and a server-side report of the same error.
	ErrorID string
	// Description is the reported payload, stored verbatim.
	Description string
}

// JoinedEvent pairs one client and one server event sharing an ErrorID.
type JoinedEvent struct {
	Client Event
	Server Event

	// ServerDay is the server timestamp truncated to local midnight.
	// It is the reference point for the ban-exclusion rule.
	ServerDay time.Time
}

// ReportRecord is the persisted shape of a reconciled event.
// Timestamp carries the server-side timestamp, not the client's.
type ReportRecord struct {
	Timestamp  int64  `gorm:"column:timestamp" json:"timestamp"`
	PlayerID   int64  `gorm:"column:player_id" json:"player_id"`
	EventID    int64  `gorm:"column:event_id" json:"event_id"`
	ErrorID    string `gorm:"column:error_id" json:"error_id"`
	JSONServer string `gorm:"column:json_server" json:"json_server"`
	JSONClient string `gorm:"column:json_client" json:"json_client"`
}

// TableName maps ReportRecord onto the report table.
func (ReportRecord) TableName() string {
	return "report"
}

// CheaterRow is a raw row of the cheater registry. BanTime is kept in its
// stored text form ("2006-01-02 15:04:05") and parsed by the registry loader.
type CheaterRow struct {
	PlayerID int64  `gorm:"column:player_id"`
	BanTime  string `gorm:"column:ban_time"`
}

// TableName maps CheaterRow onto the cheaters table.
func (CheaterRow) TableName() string {
	return "cheaters"
}

// DaySummary aggregates the persisted report rows of one day.
type DaySummary struct {
	Date    string        `json:"date"`
	Total   int           `json:"total"`
	Players []PlayerCount `json:"players"`
}

// PlayerCount is the number of reported events for one player.
type PlayerCount struct {
	PlayerID int64 `gorm:"column:player_id" json:"player_id"`
	Events   int   `gorm:"column:events" json:"events"`
}
