// Package schema resolves category identifiers to field catalogs. Catalogs
// are cached per category; concurrent category changes follow
// last-selection-wins, and a failed or slow fetch degrades to an empty
// catalog so core validation can still run.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"catalog-import-service/internal/models"
)

// Fetcher is the external category schema service.
type Fetcher interface {
	GetRequiredFields(ctx context.Context, tenantID, categoryID string) (*models.FieldCatalog, error)
}

// Resolver caches field catalogs and tracks the in-flight fetch for the most
// recently selected category.
type Resolver struct {
	fetcher Fetcher
	redis   *redis.Client
	ttl     time.Duration
	wait    time.Duration
	logger  *logrus.Entry

	mu      sync.Mutex
	current *selection
}

type selection struct {
	tenantID   string
	categoryID string
	done       chan struct{}
	catalog    *models.FieldCatalog
	err        error
}

// NewResolver builds a resolver. redisClient may be nil, in which case
// caching is disabled. wait bounds how long a parse blocks on a pending
// category fetch before degrading.
func NewResolver(fetcher Fetcher, redisClient *redis.Client, ttl, wait time.Duration, logger *logrus.Logger) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		redis:   redisClient,
		ttl:     ttl,
		wait:    wait,
		logger:  logger.WithField("component", "schema.resolver"),
	}
}

// Resolve fetches the field catalog for a category, consulting the cache
// first. The returned catalog is immutable for the lifetime of the
// selection.
func (r *Resolver) Resolve(ctx context.Context, tenantID, categoryID string) (*models.FieldCatalog, error) {
	if cat := r.fromCache(ctx, tenantID, categoryID); cat != nil {
		return cat, nil
	}

	cat, err := r.fetcher.GetRequiredFields(ctx, tenantID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("schema fetch for category %s: %w", categoryID, err)
	}
	r.toCache(ctx, tenantID, categoryID, cat)
	return cat, nil
}

// Select records a new category selection and starts its fetch in the
// background. A previous pending selection is superseded: its response, if
// it ever arrives, is discarded.
func (r *Resolver) Select(tenantID, categoryID string) {
	sel := &selection{
		tenantID:   tenantID,
		categoryID: categoryID,
		done:       make(chan struct{}),
	}

	r.mu.Lock()
	if r.current != nil {
		r.logger.WithFields(logrus.Fields{
			"superseded": r.current.categoryID,
			"selected":   categoryID,
		}).Debug("Superseding pending category selection")
	}
	r.current = sel
	r.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sel.catalog, sel.err = r.Resolve(ctx, tenantID, categoryID)
		close(sel.done)
	}()
}

// Await returns the catalog for the requested category, waiting a bounded
// time for a pending Select fetch. On timeout or fetch failure it returns
// an empty catalog and degraded=true: the parse proceeds with core rules
// only.
func (r *Resolver) Await(ctx context.Context, tenantID, categoryID string) (cat *models.FieldCatalog, degraded bool) {
	r.mu.Lock()
	sel := r.current
	r.mu.Unlock()

	if sel == nil || sel.tenantID != tenantID || sel.categoryID != categoryID {
		// No pending fetch for this category; resolve synchronously.
		resolveCtx, cancel := context.WithTimeout(ctx, r.wait)
		defer cancel()
		cat, err := r.Resolve(resolveCtx, tenantID, categoryID)
		if err != nil {
			r.logger.WithError(err).WithField("categoryId", categoryID).
				Warn("Schema fetch failed, continuing with core rules only")
			return models.EmptyFieldCatalog(categoryID), true
		}
		return cat, false
	}

	timer := time.NewTimer(r.wait)
	defer timer.Stop()
	select {
	case <-sel.done:
		if sel.err != nil {
			r.logger.WithError(sel.err).WithField("categoryId", categoryID).
				Warn("Schema fetch failed, continuing with core rules only")
			return models.EmptyFieldCatalog(categoryID), true
		}
		return sel.catalog, false
	case <-timer.C:
		r.logger.WithField("categoryId", categoryID).
			Warn("Schema fetch still pending after bounded wait, continuing with core rules only")
		return models.EmptyFieldCatalog(categoryID), true
	case <-ctx.Done():
		return models.EmptyFieldCatalog(categoryID), true
	}
}

func cacheKey(tenantID, categoryID string) string {
	return fmt.Sprintf("fieldcatalog:%s:%s", tenantID, categoryID)
}

func (r *Resolver) fromCache(ctx context.Context, tenantID, categoryID string) *models.FieldCatalog {
	if r.redis == nil {
		return nil
	}
	raw, err := r.redis.Get(ctx, cacheKey(tenantID, categoryID)).Bytes()
	if err != nil {
		return nil
	}
	var cat models.FieldCatalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil
	}
	return &cat
}

func (r *Resolver) toCache(ctx context.Context, tenantID, categoryID string, cat *models.FieldCatalog) {
	if r.redis == nil {
		return
	}
	raw, err := json.Marshal(cat)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, cacheKey(tenantID, categoryID), raw, r.ttl).Err(); err != nil {
		r.logger.WithError(err).Debug("Field catalog cache write failed")
	}
}
