// Package cache keeps the in-memory working set of orders. The collection
// mirrors the remote sheet and is replaced wholesale on every successful
// fetch; there is no eviction and no durability.
package cache

import (
	"sort"
	"strings"
	"sync"

	"dtech-os/internal/models"
)

type OrderCache struct {
	mu   sync.RWMutex
	data map[string]models.Order
}

func NewOrderCache() *OrderCache {
	return &OrderCache{data: make(map[string]models.Order)}
}

func (c *OrderCache) Put(order models.Order) {
	c.mu.Lock()
	c.data[order.ID] = order
	c.mu.Unlock()
}

func (c *OrderCache) Get(id string) (models.Order, bool) {
	c.mu.RLock()
	order, ok := c.data[id]
	c.mu.RUnlock()
	return order, ok
}

func (c *OrderCache) Delete(id string) {
	c.mu.Lock()
	delete(c.data, id)
	c.mu.Unlock()
}

// ReplaceAll swaps the whole collection for the freshly fetched one.
func (c *OrderCache) ReplaceAll(list []models.Order) {
	next := make(map[string]models.Order, len(list))
	for _, order := range list {
		next[order.ID] = order
	}
	c.mu.Lock()
	c.data = next
	c.mu.Unlock()
}

// All returns the orders sorted by id descending, newest OS numbers first.
func (c *OrderCache) All() []models.Order {
	c.mu.RLock()
	out := make([]models.Order, 0, len(c.data))
	for _, order := range c.data {
		out = append(out, order)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Search filters by id, customer name or the CPF stored in extras,
// case-insensitive substring match. A blank term returns everything.
func (c *OrderCache) Search(term string) []models.Order {
	all := c.All()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}
	out := make([]models.Order, 0, len(all))
	for _, order := range all {
		if strings.Contains(strings.ToLower(order.ID), term) ||
			strings.Contains(strings.ToLower(order.Cliente), term) ||
			strings.Contains(strings.ToLower(order.ExtraString("cpf")), term) {
			out = append(out, order)
		}
	}
	return out
}

func (c *OrderCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
