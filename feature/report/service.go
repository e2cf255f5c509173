package report

import (
	"context"
	"fmt"
	"time"

	"event-reconciler/core/storage"
	"event-reconciler/feature/report/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service runs the reconciliation pipeline and answers read-only queries
// over the persisted report table.
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
	store  storage.Client
}

// NewService creates a new report service. The storage client may be nil when
// every source is a local file.
func NewService(logger *zap.Logger, db *gorm.DB, store storage.Client) *Service {
	return &Service{
		logger: logger,
		db:     db,
		store:  store,
	}
}

// RunSummary aggregates the counts of one pipeline run.
type RunSummary struct {
	ClientEvents int
	ServerEvents int
	Joined       int
	Excluded     int
	Written      int
}

// Run reconciles one calendar day end-to-end: load both event sources and
// the cheater registry, join, exclude, and append the survivors to the
// report table. All stages run sequentially; any failure aborts the run
// before the sink is touched.
func (s *Service) Run(ctx context.Context, clientPath, serverPath string, day time.Time) (*RunSummary, error) {
	w := DayWindow(day)
	s.logger.Debug("Computed day window", zap.Int64("start", w.Start), zap.Int64("end", w.End))

	clients, err := s.LoadEvents(ctx, clientPath, w)
	if err != nil {
		return nil, fmt.Errorf("loading client events: %w", err)
	}

	servers, err := s.LoadEvents(ctx, serverPath, w)
	if err != nil {
		return nil, fmt.Errorf("loading server events: %w", err)
	}

	registry, err := LoadRegistry(s.db)
	if err != nil {
		return nil, fmt.Errorf("loading cheater registry: %w", err)
	}

	s.logger.Info("Sources loaded",
		zap.Int("client_events", len(clients)),
		zap.Int("server_events", len(servers)),
		zap.Int("banned_players", len(registry)),
	)

	joined := Join(clients, servers)
	kept, excluded := Exclude(joined, registry)
	records := Project(kept)

	if err := EnsureSchema(s.db); err != nil {
		return nil, err
	}
	if err := AppendRecords(s.db, records); err != nil {
		return nil, err
	}

	return &RunSummary{
		ClientEvents: len(clients),
		ServerEvents: len(servers),
		Joined:       len(joined),
		Excluded:     excluded,
		Written:      len(records),
	}, nil
}

// ReportForDay returns the persisted report rows of one day, ordered by
// timestamp.
func (s *Service) ReportForDay(day time.Time) ([]models.ReportRecord, error) {
	w := DayWindow(day)

	var rows []models.ReportRecord
	err := s.db.
		Where("timestamp >= ? AND timestamp < ?", w.Start, w.End).
		Order("timestamp").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: reading report rows: %w", ErrSinkUnavailable, err)
	}

	return rows, nil
}

// SummaryForDay returns per-player event counts for one day.
func (s *Service) SummaryForDay(day time.Time) (*models.DaySummary, error) {
	w := DayWindow(day)

	var players []models.PlayerCount
	err := s.db.
		Model(&models.ReportRecord{}).
		Select("player_id, COUNT(*) AS events").
		Where("timestamp >= ? AND timestamp < ?", w.Start, w.End).
		Group("player_id").
		Order("player_id").
		Scan(&players).Error
	if err != nil {
		return nil, fmt.Errorf("%w: summarizing report rows: %w", ErrSinkUnavailable, err)
	}

	total := 0
	for _, p := range players {
		total += p.Events
	}

	return &models.DaySummary{
		Date:    day.Format(dateLayout),
		Total:   total,
		Players: players,
	}, nil
}
