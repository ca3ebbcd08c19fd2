// file: internals/helpers/feed_cursor.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* ===============================
   Keyset feed cursor
=================================*/

// FeedCursor is the client-supplied keyset boundary: the created_at (and id,
// as tie-break) of the last item of the previous page. Entirely stateless —
// the server holds nothing between pages.
type FeedCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// EncodeFeedCursor renders "<RFC3339Nano>_<uuid>".
func EncodeFeedCursor(createdAt time.Time, id uuid.UUID) string {
	return createdAt.UTC().Format(time.RFC3339Nano) + "_" + id.String()
}

// ParseFeedCursor accepts the full "<RFC3339Nano>_<uuid>" form or a bare
// RFC3339 timestamp (older clients send only the timestamp). With a bare
// timestamp the ID stays uuid.Nil, which degrades the keyset predicate to a
// strict created_at comparison.
func ParseFeedCursor(raw string) (*FeedCursor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	tsPart, idPart := raw, ""
	if i := strings.LastIndex(raw, "_"); i >= 0 {
		tsPart, idPart = raw[:i], raw[i+1:]
	}

	ts, err := time.Parse(time.RFC3339Nano, tsPart)
	if err != nil {
		// second chance without fractional seconds
		ts, err = time.Parse(time.RFC3339, tsPart)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor %q", raw)
		}
	}

	cur := &FeedCursor{CreatedAt: ts.UTC()}
	if idPart != "" {
		id, err := uuid.Parse(idPart)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor id %q", idPart)
		}
		cur.ID = id
	}
	return cur, nil
}
