package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/domain"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, s *memory.Store, id, name string, stock int) {
	t.Helper()
	require.NoError(t, s.Products().Create(context.Background(), &entity.Product{
		ID: id, Name: name, Stock: stock, Price: decimal.NewFromInt(10), Version: 1,
	}))
}

func TestDecrementStock_VersionYExistencia(t *testing.T) {
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Laptop", 5)
	ctx := context.Background()

	require.NoError(t, s.Products().DecrementStock(ctx, "p1", 2, 1))
	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
	assert.Equal(t, 2, p.Version)

	// versión vieja
	assert.ErrorIs(t, s.Products().DecrementStock(ctx, "p1", 1, 1), domain.ErrConflict)
	// más de lo disponible
	assert.ErrorIs(t, s.Products().DecrementStock(ctx, "p1", 4, 2), domain.ErrConflict)
}

func TestRunOrder_RevierteAlFallar(t *testing.T) {
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Laptop", 5)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunOrder(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		if err := products.DecrementStock(ctx, "p1", 2, 1); err != nil {
			return err
		}
		if err := orders.Create(ctx, &entity.Order{ID: "o1", ClientID: "c1", SalespersonID: "u1", Status: entity.OrderStatusPending}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
	assert.Equal(t, 1, p.Version)

	o, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Nil(t, o)
}

func TestRunOrder_Confirma(t *testing.T) {
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Laptop", 5)
	ctx := context.Background()

	err := s.RunOrder(ctx, func(products repository.ProductRepository, orders repository.OrderRepository) error {
		if err := products.DecrementStock(ctx, "p1", 5, 1); err != nil {
			return err
		}
		return orders.Create(ctx, &entity.Order{
			ID: "o1", ClientID: "c1", SalespersonID: "u1", Status: entity.OrderStatusPending,
			Items: []entity.OrderItem{{ProductID: "p1", Quantity: 5}},
		})
	})
	require.NoError(t, err)

	p, err := s.Products().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Stock)

	list, err := s.Orders().ListBySalespersonAndStatus(ctx, "u1", entity.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Items[0].Quantity)
}

func TestSearch_CualquierPalabra(t *testing.T) {
	s := memory.NewStore()
	seedProduct(t, s, "p1", "Laptop Lenovo", 1)
	seedProduct(t, s, "p2", "Monitor Samsung", 1)
	seedProduct(t, s, "p3", "Teclado", 1)

	found, err := s.Products().Search(context.Background(), "lenovo SAMSUNG", 10)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "p1", found[0].ID)
	assert.Equal(t, "p2", found[1].ID)

	found, err = s.Products().Search(context.Background(), "lenovo samsung", 1)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestUpdate_Inexistente(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	assert.ErrorIs(t, s.Products().Update(ctx, &entity.Product{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Clients().Update(ctx, &entity.Client{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Orders().Update(ctx, &entity.Order{ID: "x"}), domain.ErrNotFound)
	assert.ErrorIs(t, s.Products().Delete(ctx, "x"), domain.ErrNotFound)
}

func TestClientes_EmailUnico(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, s.Clients().Create(ctx, &entity.Client{ID: "c1", Email: "a@x.com", SalespersonID: "u1"}))
	assert.ErrorIs(t, s.Clients().Create(ctx, &entity.Client{ID: "c2", Email: "a@x.com", SalespersonID: "u2"}), domain.ErrConflict)

	require.NoError(t, s.Clients().Create(ctx, &entity.Client{ID: "c3", Email: "b@x.com", SalespersonID: "u1"}))
	assert.ErrorIs(t, s.Clients().Update(ctx, &entity.Client{ID: "c3", Email: "a@x.com", SalespersonID: "u1"}), domain.ErrConflict)
}

// Las entidades devueltas son copias: mutarlas no altera el almacén.
func TestCopiasDefensivas(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, s.Orders().Create(ctx, &entity.Order{
		ID: "o1", SalespersonID: "u1", Status: entity.OrderStatusPending,
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1}},
	}))

	o, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	o.Items[0].Quantity = 99
	o.Status = entity.OrderStatusCancelled

	again, err := s.Orders().GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].Quantity)
	assert.Equal(t, entity.OrderStatusPending, again.Status)
}
