// Package ledger holds the shopper's cart and wishlist: the in-memory source
// of truth for items the user wants to buy or save, with derived totals and
// write-through persistence to a port.Storage.
//
// Ledger operations never fail. Lookups of unknown ids are no-ops, input is
// stored as given, and a missing or unreadable snapshot hydrates as an empty
// ledger.
package ledger

import (
	"encoding/json"

	"github.com/nikolayk812/shopledger/internal/port"
)

const (
	CartKey     = "cart"
	WishlistKey = "wishlist"
)

// hydrate decodes the snapshot stored under key into dst. It reports false
// when the key is absent or the snapshot does not parse.
func hydrate(store port.Storage, key string, dst any) bool {
	data, ok := store.Get(key)
	if !ok {
		return false
	}

	return json.Unmarshal(data, dst) == nil
}

func persist(store port.Storage, key string, state any) {
	data, err := json.Marshal(state)
	if err != nil {
		// state holds only strings, ints, bools and decimals
		return
	}

	store.Set(key, data)
}

func copyError(err *string) *string {
	if err == nil {
		return nil
	}
	msg := *err
	return &msg
}
