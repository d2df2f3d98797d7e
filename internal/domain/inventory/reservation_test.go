package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/inventory"
)

func TestReserve(t *testing.T) {
	cases := []struct {
		name      string
		stock     int
		quantity  int
		remaining int
		ok        bool
	}{
		{"parcial", 5, 3, 2, true},
		{"exacto", 5, 5, 0, true},
		{"excede", 2, 3, 2, false},
		{"sin existencia", 0, 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			remaining, ok := inventory.Reserve(&entity.Product{Stock: tc.stock}, tc.quantity)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.remaining, remaining)
		})
	}
}
