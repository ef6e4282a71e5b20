package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

type touchEvent struct {
	TouchID   string
	ItemType  string
	ItemID    string
	ItemEvent string
	Status    string
	TouchedAt time.Time
}

func mustFetchTouchEvents(ctx context.Context, t *testing.T, client *spanner.Client, itemID string) []touchEvent {
	t.Helper()
	items, err := fetchTouchEvents(ctx, client, itemID)
	require.NoError(t, err)
	return items
}

func fetchTouchEvents(ctx context.Context, client *spanner.Client, itemID string) ([]touchEvent, error) {
	stmt := spanner.Statement{
		SQL: `SELECT touch_id, item_type, item_id, item_event, status, touched_at
        FROM touch_events
        WHERE item_id = @id
        ORDER BY touched_at ASC, touch_id ASC`,
		Params: map[string]any{"id": itemID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	out := make([]touchEvent, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		var e touchEvent
		if err := row.Columns(&e.TouchID, &e.ItemType, &e.ItemID, &e.ItemEvent, &e.Status, &e.TouchedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func countURLRows(ctx context.Context, t *testing.T, client *spanner.Client, abstractID string) int64 {
	t.Helper()
	stmt := spanner.Statement{
		SQL: `SELECT COUNT(*) FROM urls
        WHERE resource_type = 'product_abstract' AND resource_id = @id`,
		Params: map[string]any{"id": abstractID},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err)

	var n int64
	require.NoError(t, row.Columns(&n))
	return n
}
