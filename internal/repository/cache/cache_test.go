package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dtech-os/internal/models"
	"dtech-os/internal/repository/cache"
)

func TestOrderCache_PutGetDelete(t *testing.T) {
	c := cache.NewOrderCache()

	_, ok := c.Get("20240315-001")
	require.False(t, ok)

	c.Put(models.Order{ID: "20240315-001", Cliente: "Maria"})
	order, ok := c.Get("20240315-001")
	require.True(t, ok)
	require.Equal(t, "Maria", order.Cliente)
	require.Equal(t, 1, c.Len())

	c.Delete("20240315-001")
	_, ok = c.Get("20240315-001")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestOrderCache_ReplaceAll(t *testing.T) {
	c := cache.NewOrderCache()
	c.Put(models.Order{ID: "old"})

	c.ReplaceAll([]models.Order{
		{ID: "20240315-001"},
		{ID: "20240315-002"},
	})

	require.Equal(t, 2, c.Len())
	_, ok := c.Get("old")
	require.False(t, ok)
}

func TestOrderCache_AllSortedNewestFirst(t *testing.T) {
	c := cache.NewOrderCache()
	c.Put(models.Order{ID: "20240314-003"})
	c.Put(models.Order{ID: "20240315-001"})
	c.Put(models.Order{ID: "20240315-002"})

	all := c.All()
	require.Len(t, all, 3)
	require.Equal(t, "20240315-002", all[0].ID)
	require.Equal(t, "20240315-001", all[1].ID)
	require.Equal(t, "20240314-003", all[2].ID)
}

func TestOrderCache_Search(t *testing.T) {
	c := cache.NewOrderCache()
	c.Put(models.Order{ID: "20240315-001", Cliente: "Maria Silva"})
	c.Put(models.Order{ID: "20240315-002", Cliente: "Joao", Extras: models.Extras{"cpf": "12345678900"}})

	require.Len(t, c.Search(""), 2)
	require.Len(t, c.Search("maria"), 1)
	require.Len(t, c.Search("20240315"), 2)
	require.Len(t, c.Search("456"), 1)
	require.Empty(t, c.Search("nada"))
}
