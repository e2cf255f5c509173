package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"event-reconciler/core/storage/mocks"
	"event-reconciler/feature/report/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testWindow covers 05.01.2021 in the local timezone.
func testWindow(t *testing.T) Window {
	t.Helper()
	return DayWindow(time.Date(2021, 1, 5, 0, 0, 0, 0, time.Local))
}

func TestReadEvents(t *testing.T) {
	w := testWindow(t)
	inTS := w.Start + 3600

	t.Run("Happy Path", func(t *testing.T) {
		input := fmt.Sprintf("timestamp,player_id,event_id,error_id,description\n%d,1,5,E1,c1\n", inTS)

		events, err := ReadEvents(strings.NewReader(input), w)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, models.Event{
			Timestamp:   inTS,
			PlayerID:    1,
			EventID:     5,
			ErrorID:     "E1",
			Description: "c1",
		}, events[0])
	})

	t.Run("Column Order Irrelevant", func(t *testing.T) {
		input := fmt.Sprintf("description,error_id,event_id,player_id,timestamp\nc1,E1,5,1,%d\n", inTS)

		events, err := ReadEvents(strings.NewReader(input), w)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "E1", events[0].ErrorID)
		assert.Equal(t, int64(1), events[0].PlayerID)
	})

	t.Run("Window Filter", func(t *testing.T) {
		input := fmt.Sprintf("timestamp,player_id,event_id,error_id,description\n%d,1,5,E1,before\n%d,1,5,E2,start\n%d,1,5,E3,end\n",
			w.Start-1, w.Start, w.End)

		events, err := ReadEvents(strings.NewReader(input), w)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "E2", events[0].ErrorID)
	})

	t.Run("Missing Column", func(t *testing.T) {
		input := "timestamp,player_id,event_id,description\n1,1,1,x\n"

		_, err := ReadEvents(strings.NewReader(input), w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaMismatch)
		assert.Contains(t, err.Error(), "error_id")
	})

	t.Run("Malformed Row Fails Whole File", func(t *testing.T) {
		input := fmt.Sprintf("timestamp,player_id,event_id,error_id,description\n%d,1,5,E1,ok\nnot-a-number,1,5,E2,bad\n", inTS)

		_, err := ReadEvents(strings.NewReader(input), w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaMismatch)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("Ragged Row Fails Whole File", func(t *testing.T) {
		input := fmt.Sprintf("timestamp,player_id,event_id,error_id,description\n%d,1,5\n", inTS)

		_, err := ReadEvents(strings.NewReader(input), w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Empty Body", func(t *testing.T) {
		input := "timestamp,player_id,event_id,error_id,description\n"

		events, err := ReadEvents(strings.NewReader(input), w)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestLoadEvents(t *testing.T) {
	w := testWindow(t)
	inTS := w.Start + 3600
	csvBody := fmt.Sprintf("timestamp,player_id,event_id,error_id,description\n%d,1,5,E1,c1\n", inTS)

	t.Run("Local File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.csv")
		require.NoError(t, os.WriteFile(path, []byte(csvBody), 0o644))

		svc := NewService(testLogger(t), nil, nil)
		events, err := svc.LoadEvents(context.Background(), path, w)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("Missing Local File", func(t *testing.T) {
		svc := NewService(testLogger(t), nil, nil)

		_, err := svc.LoadEvents(context.Background(), filepath.Join(t.TempDir(), "absent.csv"), w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Object Storage", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		client.On("GetObject", mock.Anything, "exports", "client.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader(csvBody)), nil)

		svc := NewService(testLogger(t), nil, client)
		events, err := svc.LoadEvents(context.Background(), "s3://exports/client.csv", w)
		require.NoError(t, err)
		assert.Len(t, events, 1)
		client.AssertExpectations(t)
	})

	t.Run("Object Storage Missing Bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(false, nil)

		svc := NewService(testLogger(t), nil, client)
		_, err := svc.LoadEvents(context.Background(), "s3://exports/client.csv", w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Object Path Without Client", func(t *testing.T) {
		svc := NewService(testLogger(t), nil, nil)

		_, err := svc.LoadEvents(context.Background(), "s3://exports/client.csv", w)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})
}

func TestIsObjectPath(t *testing.T) {
	assert.True(t, IsObjectPath("s3://bucket/object.csv"))
	assert.False(t, IsObjectPath("/var/data/client.csv"))
	assert.False(t, IsObjectPath("client.csv"))
}

func TestSplitObjectPath(t *testing.T) {
	bucket, object, err := splitObjectPath("s3://exports/daily/client.csv")
	require.NoError(t, err)
	assert.Equal(t, "exports", bucket)
	assert.Equal(t, "daily/client.csv", object)

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/"} {
		_, _, err := splitObjectPath(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
