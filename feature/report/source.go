package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"event-reconciler/feature/report/models"

	"github.com/minio/minio-go/v7"
)

// Required CSV columns, located by header name in any order.
const (
	colTimestamp   = "timestamp"
	colPlayerID    = "player_id"
	colEventID     = "event_id"
	colErrorID     = "error_id"
	colDescription = "description"
)

const objectScheme = "s3://"

// IsObjectPath reports whether a source path addresses object storage.
func IsObjectPath(path string) bool {
	return strings.HasPrefix(path, objectScheme)
}

// splitObjectPath splits an s3://bucket/object URL into its parts.
func splitObjectPath(path string) (bucket, object string, err error) {
	rest := strings.TrimPrefix(path, objectScheme)
	bucket, object, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("invalid object path %q, expected s3://bucket/object", path)
	}
	return bucket, object, nil
}

// LoadEvents loads one event CSV and restricts it to the window.
// The path is either a local file or an s3://bucket/object URL.
func (s *Service) LoadEvents(ctx context.Context, path string, w Window) ([]models.Event, error) {
	r, err := s.openSource(ctx, path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	events, err := ReadEvents(r, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// openSource opens a local file or an object storage download stream.
func (s *Service) openSource(ctx context.Context, path string) (io.ReadCloser, error) {
	if !IsObjectPath(path) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}
		return f, nil
	}

	if s.store == nil {
		return nil, fmt.Errorf("%w: %s requires a configured storage client", ErrSourceUnavailable, path)
	}

	bucket, object, err := splitObjectPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	exists, err := s.store.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: checking bucket %q: %w", ErrSourceUnavailable, bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: bucket %q does not exist", ErrSourceUnavailable, bucket)
	}

	obj, err := s.store.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return obj, nil
}

// ReadEvents parses an event CSV and returns the rows whose timestamp falls
// inside the window. Any malformed row fails the whole load; there is no
// skip-and-continue.
func ReadEvents(r io.Reader, w Window) ([]models.Event, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrSourceUnavailable, err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSourceUnavailable, line, err)
		}

		ev, err := parseEvent(row, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrSchemaMismatch, line, err)
		}

		if w.Contains(ev.Timestamp) {
			events = append(events, ev)
		}
	}

	return events, nil
}

// columnIndex holds the header position of each required column.
type columnIndex struct {
	timestamp   int
	playerID    int
	eventID     int
	errorID     int
	description int
}

func indexColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	cols := columnIndex{}
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{colTimestamp, &cols.timestamp},
		{colPlayerID, &cols.playerID},
		{colEventID, &cols.eventID},
		{colErrorID, &cols.errorID},
		{colDescription, &cols.description},
	} {
		idx, ok := byName[req.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, req.name)
		}
		*req.dst = idx
	}

	return cols, nil
}

func parseEvent(row []string, cols columnIndex) (models.Event, error) {
	ts, err := strconv.ParseInt(row[cols.timestamp], 10, 64)
	if err != nil {
		return models.Event{}, fmt.Errorf("timestamp %q is not an integer", row[cols.timestamp])
	}

	playerID, err := strconv.ParseInt(row[cols.playerID], 10, 64)
	if err != nil {
		return models.Event{}, fmt.Errorf("player_id %q is not an integer", row[cols.playerID])
	}

	eventID, err := strconv.ParseInt(row[cols.eventID], 10, 64)
	if err != nil {
		return models.Event{}, fmt.Errorf("event_id %q is not an integer", row[cols.eventID])
	}

	return models.Event{
		Timestamp:   ts,
		PlayerID:    playerID,
		EventID:     eventID,
		ErrorID:     row[cols.errorID],
		Description: row[cols.description],
	}, nil
}
