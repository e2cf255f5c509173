package report

import (
	"fmt"
	"time"

	"event-reconciler/feature/report/models"

	"gorm.io/gorm"
)

// banTimeLayout is the stored ban_time text format.
const banTimeLayout = "2006-01-02 15:04:05"

// Registry maps a player id to their earliest ban time. Duplicate registry
// rows for one player collapse to the earliest ban, the most conservative
// choice for the exclusion rule.
type Registry map[int64]time.Time

// LoadRegistry reads the whole cheater registry. An empty table yields an
// empty registry, not an error.
func LoadRegistry(db *gorm.DB) (Registry, error) {
	var rows []models.CheaterRow
	if err := db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: reading cheater registry: %w", ErrSourceUnavailable, err)
	}

	reg := make(Registry, len(rows))
	for _, row := range rows {
		banTime, err := time.ParseInLocation(banTimeLayout, row.BanTime, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: player %d: %q", ErrMalformedTimestamp, row.PlayerID, row.BanTime)
		}

		if current, ok := reg[row.PlayerID]; !ok || banTime.Before(current) {
			reg[row.PlayerID] = banTime
		}
	}

	return reg, nil
}

// BannedBefore reports whether the player was banned strictly before the
// given day start. A ban on the day itself (or later) does not count: the
// event predates or coincides with detection and stays reportable.
func (r Registry) BannedBefore(playerID int64, day time.Time) bool {
	banTime, ok := r[playerID]
	return ok && banTime.Before(day)
}
