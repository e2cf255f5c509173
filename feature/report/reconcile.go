package report

import (
	"event-reconciler/feature/report/models"
)

// Join produces the full inner join of client and server events on ErrorID.
// Duplicate error ids on either side cross-match combinatorially; rows with
// no counterpart on the other side are dropped. Each pair carries the server
// timestamp truncated to local midnight for the exclusion rule.
func Join(clients, servers []models.Event) []models.JoinedEvent {
	clientsByError := make(map[string][]models.Event, len(clients))
	for _, c := range clients {
		clientsByError[c.ErrorID] = append(clientsByError[c.ErrorID], c)
	}

	var joined []models.JoinedEvent
	for _, srv := range servers {
		matches := clientsByError[srv.ErrorID]
		if len(matches) == 0 {
			continue
		}
		serverDay := dayOf(srv.Timestamp)
		for _, cli := range matches {
			joined = append(joined, models.JoinedEvent{
				Client:    cli,
				Server:    srv,
				ServerDay: serverDay,
			})
		}
	}

	return joined
}

// Exclude drops joined events whose player was banned strictly before the
// event's server day. It returns the survivors and the number of dropped
// events.
func Exclude(joined []models.JoinedEvent, reg Registry) ([]models.JoinedEvent, int) {
	kept := make([]models.JoinedEvent, 0, len(joined))
	for _, j := range joined {
		if reg.BannedBefore(j.Server.PlayerID, j.ServerDay) {
			continue
		}
		kept = append(kept, j)
	}
	return kept, len(joined) - len(kept)
}

// Project maps surviving joined events into the persisted report shape.
// The report timestamp is the server timestamp; the client timestamp and the
// derived server day are dropped.
func Project(joined []models.JoinedEvent) []models.ReportRecord {
	records := make([]models.ReportRecord, 0, len(joined))
	for _, j := range joined {
		records = append(records, models.ReportRecord{
			Timestamp:  j.Server.Timestamp,
			PlayerID:   j.Server.PlayerID,
			EventID:    j.Server.EventID,
			ErrorID:    j.Server.ErrorID,
			JSONServer: j.Server.Description,
			JSONClient: j.Client.Description,
		})
	}
	return records
}
