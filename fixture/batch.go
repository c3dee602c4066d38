package fixture

import (
	"context"
	crand "crypto/rand"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

// lockedReader serializes reads from a shared randomness source.
type lockedReader struct {
	mtx sync.Mutex
	r   io.Reader
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return io.ReadFull(l.r, p)
}

// GenerateBatch generates one record per message, each under its own fresh
// key, concurrently.  The records are returned in message order.  rand is
// shared between the workers; a nil rand selects crypto/rand.
func GenerateBatch(ctx context.Context, messages [][]byte, rand io.Reader) ([]*Record, error) {
	if rand == nil {
		rand = crand.Reader
	}
	shared := &lockedReader{r: rand}

	records := make([]*Record, len(messages))
	g, ctx := errgroup.WithContext(ctx)
	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := Generate(msg, shared)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Infof("generated %d vectors", len(records))
	return records, nil
}
