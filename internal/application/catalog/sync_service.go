package catalog

import (
	"context"
	"time"

	"go.uber.org/zap"

	domaincatalog "github.com/catalogozord/backend/internal/domain/catalog"
	"github.com/catalogozord/backend/internal/domain/integration"
)

const (
	// maxSyncPages is a hard safety stop against an upstream that never
	// reports has_more=false.
	maxSyncPages = 5000

	syncPageLimit = 100
)

// SyncService walks the full upstream catalog and refreshes the local
// mirror. The walk is strictly sequential; rows accumulate in memory and are
// written in a single bulk upsert after the walk completes, so an aborted
// run leaves the mirror untouched.
type SyncService struct {
	gateway integration.ERPGateway
	entries domaincatalog.EntryRepository
	logger  *zap.Logger
	now     func() time.Time
}

// NewSyncService creates a new synchronization service.
func NewSyncService(
	gateway integration.ERPGateway,
	entries domaincatalog.EntryRepository,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		gateway: gateway,
		entries: entries,
		logger:  logger,
		now:     time.Now,
	}
}

// Run executes one synchronization and returns the number of rows upserted.
// The first gateway failure aborts the whole run.
func (s *SyncService) Run(ctx context.Context) (*SyncResult, error) {
	start := s.now().UTC()
	batch := make([]domaincatalog.Entry, 0, syncPageLimit)

	page := 1
	hasMore := true
	for hasMore {
		if page > maxSyncPages {
			s.logger.Warn("catalog sync stopped at page ceiling",
				zap.Int("ceiling", maxSyncPages),
				zap.Int("accumulated", len(batch)),
			)
			break
		}

		result, err := s.gateway.ListCatalogPage(ctx, page, syncPageLimit)
		if err != nil {
			return nil, err
		}

		for _, item := range result.Items {
			if item.SKU == "" {
				continue
			}
			batch = append(batch, entryFromItem(item, start))
		}

		hasMore = result.HasMore
		page++
	}

	if err := s.entries.UpsertBatch(ctx, batch); err != nil {
		return nil, err
	}

	s.logger.Info("catalog sync finished",
		zap.Int("rows", len(batch)),
		zap.Int("pages", page-1),
		zap.Duration("elapsed", s.now().Sub(start)),
	)
	return &SyncResult{Total: len(batch)}, nil
}

func entryFromItem(item integration.CatalogItem, syncedAt time.Time) domaincatalog.Entry {
	return domaincatalog.Entry{
		SKU:          item.SKU,
		Name:         item.Name,
		ParentCode:   item.ParentCode,
		DerivationID: item.DerivationID,
		ImageURL:     item.ImageURL,
		Active:       item.Active,
		Price:        item.Price,
		SyncedAt:     syncedAt,
	}
}
