package repository

import (
	"context"

	"github.com/eclatdelune/lune_api/internal/store"
)

// Collection names, one per entity type.
const (
	ColProducts     = "product"
	ColLookbook     = "lookbookentry"
	ColLoyaltyUsers = "loyaltyuser"
	ColJournalPosts = "journalpost"
)

// DocumentStore is the store adapter contract the repositories depend on.
// It is satisfied by store.Store and by the in-memory double used in tests.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Find(ctx context.Context, collection string, filter store.Filter, limit int64, out interface{}) error
	FindOrInsert(ctx context.Context, collection string, filter store.Filter, defaults map[string]interface{}, out interface{}) (created bool, err error)
	IncrementUpsert(ctx context.Context, collection string, filter store.Filter, defaults map[string]interface{}, field string, delta int64) (found bool, total int64, err error)
}
