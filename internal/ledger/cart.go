package ledger

import (
	"slices"
	"sync"

	"github.com/nikolayk812/shopledger/internal/domain"
	"github.com/nikolayk812/shopledger/internal/port"
)

type Cart struct {
	mu    sync.Mutex
	store port.Storage
	state domain.CartState
}

// NewCart hydrates a cart from the snapshot under CartKey.
func NewCart(store port.Storage) *Cart {
	c := &Cart{store: store}

	var state domain.CartState
	if !hydrate(store, CartKey, &state) {
		state = domain.CartState{}
	}
	if state.Items == nil {
		state.Items = []domain.CartItem{}
	}
	state.CartTotals = domain.ComputeCartTotals(state.Items)

	c.state = state

	return c
}

// AddItem appends item, or merges it into an existing entry with the same id
// by adding quantities. Name, price and discount of an existing entry are kept.
func (c *Cart) AddItem(item domain.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(item.ID); i >= 0 {
		c.state.Items[i].Quantity += item.Quantity
	} else {
		c.state.Items = append(c.state.Items, item)
	}

	c.commit()
}

func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Items = slices.DeleteFunc(c.state.Items, func(item domain.CartItem) bool {
		return item.ID == id
	})

	c.commit()
}

// SetQuantity sets the quantity verbatim. Zero and negative values are not
// rejected; keeping quantities positive is up to the caller.
func (c *Cart) SetQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return
	}

	c.state.Items[i].Quantity = quantity

	c.commit()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Items = []domain.CartItem{}

	c.commit()
}

func (c *Cart) SetError(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Error = &msg

	c.commit()
}

func (c *Cart) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Error = nil

	c.commit()
}

func (c *Cart) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.IsLoading = loading

	c.commit()
}

// State returns a copy of the cart, safe to retain and modify.
func (c *Cart) State() domain.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.Items = slices.Clone(c.state.Items)
	state.Error = copyError(c.state.Error)

	return state
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.state.Items)
}

func (c *Cart) Totals() domain.CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.CartTotals
}

func (c *Cart) Item(id string) (domain.CartItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.CartItem{}, false
	}

	return c.state.Items[i], true
}

// commit recomputes all totals from items and writes the snapshot through.
// Callers must hold mu.
func (c *Cart) commit() {
	c.state.CartTotals = domain.ComputeCartTotals(c.state.Items)
	persist(c.store, CartKey, c.state)
}

func (c *Cart) indexOf(id string) int {
	return slices.IndexFunc(c.state.Items, func(item domain.CartItem) bool {
		return item.ID == id
	})
}
