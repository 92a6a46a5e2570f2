package repository

import (
	"dtech-os/internal/models"
	"dtech-os/internal/repository/cache"
)

// OrderCache is the in-memory working set of normalized orders.
type OrderCache interface {
	Put(order models.Order)
	Get(id string) (models.Order, bool)
	Delete(id string)
	ReplaceAll(list []models.Order)
	All() []models.Order
	Search(term string) []models.Order
	Len() int
}

type Repository struct {
	OrderCache
}

func NewRepository() *Repository {
	return &Repository{OrderCache: cache.NewOrderCache()}
}
