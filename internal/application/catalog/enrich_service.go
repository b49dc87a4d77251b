package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/catalogozord/backend/internal/domain/integration"
)

// EnrichmentOptions tunes the live-figure fetcher pool.
type EnrichmentOptions struct {
	Workers          int
	RequestInterval  time.Duration
	RateLimitBackoff time.Duration
}

func (o *EnrichmentOptions) fillDefaults() {
	if o.Workers < 1 {
		o.Workers = 4
	}
	if o.RequestInterval <= 0 {
		o.RequestInterval = 120 * time.Millisecond
	}
	if o.RateLimitBackoff <= 0 {
		o.RateLimitBackoff = 800 * time.Millisecond
	}
}

// EnrichmentService overlays live ERP figures onto a page of catalog rows.
// A fixed pool of workers claims SKUs from a shared cursor; each worker
// throttles its own requests and backs off on 429, retrying the same SKU
// without advancing. Other errors leave the row without live data.
type EnrichmentService struct {
	gateway integration.ERPGateway
	opts    EnrichmentOptions
	logger  *zap.Logger
}

// NewEnrichmentService creates a new enrichment service.
func NewEnrichmentService(gateway integration.ERPGateway, opts EnrichmentOptions, logger *zap.Logger) *EnrichmentService {
	opts.fillDefaults()
	return &EnrichmentService{gateway: gateway, opts: opts, logger: logger}
}

// Enrich fetches live figures for every row and merges them in place. It
// returns when all workers have exhausted the cursor or the context is
// cancelled. Rows that could not be fetched keep Live == nil.
func (s *EnrichmentService) Enrich(ctx context.Context, rows []*Row) {
	batch := newEnrichBatch(rows)
	if len(batch.skus) == 0 {
		return
	}

	workers := s.opts.Workers
	if workers > len(batch.skus) {
		workers = len(batch.skus)
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runWorker(ctx, batch, &cursor)
		}()
	}
	wg.Wait()
}

func (s *EnrichmentService) runWorker(ctx context.Context, batch *enrichBatch, cursor *atomic.Int64) {
	limiter := rate.NewLimiter(rate.Every(s.opts.RequestInterval), 1)

	for {
		index := cursor.Add(1) - 1
		if index >= int64(len(batch.skus)) {
			return
		}
		sku := batch.skus[index]

		for {
			err := s.fetchOne(ctx, limiter, batch, sku)
			if err == nil {
				break
			}
			if integration.IsRateLimited(err) {
				// Back off and retry the same SKU without advancing.
				if !sleepContext(ctx, s.opts.RateLimitBackoff) {
					return
				}
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Debug("enrichment skipped sku",
				zap.String("sku", sku), zap.Error(err))
			break
		}
	}
}

func (s *EnrichmentService) fetchOne(ctx context.Context, limiter *rate.Limiter, batch *enrichBatch, sku string) error {
	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	levels, err := s.gateway.FetchInventory(ctx, sku)
	if err != nil {
		return err
	}

	if err := limiter.Wait(ctx); err != nil {
		return err
	}
	price, err := s.gateway.FetchPrice(ctx, sku)
	if err != nil {
		return err
	}

	if len(levels) == 0 && price == nil {
		return nil
	}

	live := &LiveFigures{Price: price}
	if len(levels) > 0 {
		live.OnHand = levels[0].Available
		live.Reserved = levels[0].Reserved
		live.AverageCost = levels[0].AverageCost
	}
	batch.merge(sku, live)
	return nil
}

// enrichBatch owns the rows of one enrichment run. Merges are keyed by SKU
// and serialized by the mutex, so an abandoned run can never write into a
// successor's rows.
type enrichBatch struct {
	mu   sync.Mutex
	rows map[string]*Row
	skus []string
}

func newEnrichBatch(rows []*Row) *enrichBatch {
	batch := &enrichBatch{rows: make(map[string]*Row, len(rows))}
	for _, row := range rows {
		if row == nil || row.SKU == "" {
			continue
		}
		if _, seen := batch.rows[row.SKU]; seen {
			continue
		}
		batch.rows[row.SKU] = row
		batch.skus = append(batch.skus, row.SKU)
	}
	return batch
}

func (b *enrichBatch) merge(sku string, live *LiveFigures) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row, ok := b.rows[sku]; ok {
		row.Live = live
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
