// Package cached decorates the action item repository with an expiring
// in-memory cache for list lookups. List details are requested once per
// category derivation pass per list, so the cache collapses the per-list
// fetch loop into at most one upstream call per TTL window, and concurrent
// requests for the same list share a single in-flight fetch.
package cached

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"planboard/internal/actionitem/repository"
	"planboard/internal/model"
	pkgLog "planboard/pkg/log"
)

const (
	defaultCacheSize = 512
	defaultTTL       = 30 * time.Second
)

type cachedRepository struct {
	repository.Repository

	lists *expirable.LRU[string, model.ActionList]
	group singleflight.Group
	l     pkgLog.Logger
}

// New wraps inner with a list-detail cache. ttl <= 0 falls back to the
// default TTL.
func New(inner repository.Repository, ttl time.Duration, l pkgLog.Logger) repository.Repository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &cachedRepository{
		Repository: inner,
		lists:      expirable.NewLRU[string, model.ActionList](defaultCacheSize, nil, ttl),
		l:          l,
	}
}

// GetOneList serves from cache when possible. A zero-value result (list does
// not exist upstream) is not cached so a later creation becomes visible.
func (r *cachedRepository) GetOneList(ctx context.Context, id string) (model.ActionList, error) {
	if list, ok := r.lists.Get(id); ok {
		return list, nil
	}

	v, err, _ := r.group.Do(id, func() (any, error) {
		list, err := r.Repository.GetOneList(ctx, id)
		if err != nil {
			return model.ActionList{}, err
		}
		if list.ID != "" {
			r.lists.Add(id, list)
		}
		return list, nil
	})
	if err != nil {
		return model.ActionList{}, err
	}
	return v.(model.ActionList), nil
}

// ListLists passes through and refreshes cache entries as a side effect.
func (r *cachedRepository) ListLists(ctx context.Context, opt repository.ListListsOptions) ([]model.ActionList, error) {
	lists, err := r.Repository.ListLists(ctx, opt)
	if err != nil {
		return nil, err
	}
	for _, list := range lists {
		r.lists.Add(list.ID, list)
	}
	return lists, nil
}

// CreateItem passes through and drops the target list's cached detail so
// the membership change is visible on the next read.
func (r *cachedRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.ActionItem, error) {
	item, err := r.Repository.CreateItem(ctx, opt)
	if err != nil {
		return model.ActionItem{}, err
	}
	if item.ListID != "" {
		r.lists.Remove(item.ListID)
	}
	return item, nil
}

// UpdateItem passes through and drops both the previous and the new list
// when the item moved.
func (r *cachedRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.ActionItem, error) {
	item, err := r.Repository.UpdateItem(ctx, opt)
	if err != nil {
		return model.ActionItem{}, err
	}
	if opt.ListID != nil && *opt.ListID != "" {
		r.lists.Remove(*opt.ListID)
	}
	if item.ListID != "" {
		r.lists.Remove(item.ListID)
	}
	return item, nil
}

// DeleteItem passes through. The deleted item's list is unknown at this
// layer, so the whole list cache is dropped.
func (r *cachedRepository) DeleteItem(ctx context.Context, id string) error {
	if err := r.Repository.DeleteItem(ctx, id); err != nil {
		return err
	}
	r.lists.Purge()
	return nil
}
