package ledger

import (
	"slices"
	"sync"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
)

type Wishlist struct {
	mu    sync.Mutex
	store port.Storage
	state domain.WishlistState
}

// NewWishlist hydrates a wishlist from the snapshot under WishlistKey.
func NewWishlist(store port.Storage) *Wishlist {
	w := &Wishlist{store: store}

	var state domain.WishlistState
	if !hydrate(store, WishlistKey, &state) {
		state = domain.WishlistState{}
	}
	if state.Items == nil {
		state.Items = []domain.WishlistItem{}
	}

	w.state = state

	return w
}

// AddItem appends item unless an entry with the same id is already saved,
// in which case nothing changes.
func (w *Wishlist) AddItem(item domain.WishlistItem) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.indexOf(item.ID) >= 0 {
		return
	}

	w.state.Items = append(w.state.Items, item)

	w.commit()
}

func (w *Wishlist) RemoveItem(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.Items = slices.DeleteFunc(w.state.Items, func(item domain.WishlistItem) bool {
		return item.ID == id
	})

	w.commit()
}

func (w *Wishlist) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.Items = []domain.WishlistItem{}

	w.commit()
}

func (w *Wishlist) SetError(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.Error = &msg

	w.commit()
}

func (w *Wishlist) ClearError() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.Error = nil

	w.commit()
}

func (w *Wishlist) SetLoading(loading bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.state.IsLoading = loading

	w.commit()
}

func (w *Wishlist) State() domain.WishlistState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := w.state
	state.Items = slices.Clone(w.state.Items)
	state.Error = copyError(w.state.Error)

	return state
}

func (w *Wishlist) Items() []domain.WishlistItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	return slices.Clone(w.state.Items)
}

func (w *Wishlist) Item(id string) (domain.WishlistItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return domain.WishlistItem{}, false
	}

	return w.state.Items[i], true
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.indexOf(id) >= 0
}

func (w *Wishlist) commit() {
	persist(w.store, WishlistKey, w.state)
}

func (w *Wishlist) indexOf(id string) int {
	return slices.IndexFunc(w.state.Items, func(item domain.WishlistItem) bool {
		return item.ID == id
	})
}
