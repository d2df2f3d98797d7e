package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-ventas-api/internal/application/analytics"
	"github.com/jhoicas/crm-ventas-api/internal/domain/entity"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/memory"
)

func seedOrder(t *testing.T, store *memory.Store, id, clientID, sellerID, status string, total int64) {
	t.Helper()
	require.NoError(t, store.Orders().Create(context.Background(), &entity.Order{
		ID: id, ClientID: clientID, SalespersonID: sellerID, Status: status,
		Total: decimal.NewFromInt(total), CreatedAt: time.Now(),
		Items: []entity.OrderItem{{ProductID: "p1", Quantity: 1}},
	}))
}

func TestTopClients_SoloCompletadosYOrdenados(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: id, Email: id + "@x.com", SalespersonID: "u1"}))
	}
	seedOrder(t, store, "o1", "c1", "u1", entity.OrderStatusCompleted, 100)
	seedOrder(t, store, "o2", "c2", "u1", entity.OrderStatusCompleted, 300)
	seedOrder(t, store, "o3", "c1", "u1", entity.OrderStatusCompleted, 50)
	seedOrder(t, store, "o4", "c3", "u1", entity.OrderStatusPending, 1000)
	seedOrder(t, store, "o5", "c3", "u1", entity.OrderStatusCancelled, 1000)

	uc := analytics.NewReportUseCase(store.Reports(), store.Clients(), store.Users())
	top, err := uc.TopClients(ctx)
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, 300.0, top[0].Total)
	assert.Equal(t, "c2", top[0].Client[0].ID)
	assert.Equal(t, 150.0, top[1].Total)
	assert.Equal(t, "c1", top[1].Client[0].ID)
}

// Los 10 mayores, no los 10 primeros grupos que devuelva el almacenamiento.
func TestTopClients_LimitaDespuesDeOrdenar(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("c%02d", i)
		require.NoError(t, store.Clients().Create(ctx, &entity.Client{ID: id, Email: id + "@x.com", SalespersonID: "u1"}))
		seedOrder(t, store, "o"+id, id, "u1", entity.OrderStatusCompleted, int64(i*10))
	}

	uc := analytics.NewReportUseCase(store.Reports(), store.Clients(), store.Users())
	top, err := uc.TopClients(ctx)
	require.NoError(t, err)

	require.Len(t, top, 10)
	assert.Equal(t, 120.0, top[0].Total)
	assert.Equal(t, 30.0, top[9].Total)
}

func TestTopVendors_Top3YClienteEliminado(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	for i := 1; i <= 4; i++ {
		id := fmt.Sprintf("u%d", i)
		require.NoError(t, store.Users().Create(ctx, &entity.User{ID: id, FirstName: "V", Email: id + "@x.com"}))
		seedOrder(t, store, "o"+id, "c-borrado", id, entity.OrderStatusCompleted, int64(i*100))
	}

	uc := analytics.NewReportUseCase(store.Reports(), store.Clients(), store.Users())
	vendors, err := uc.TopVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 3)
	assert.Equal(t, 400.0, vendors[0].Total)
	assert.Equal(t, "u4@x.com", vendors[0].Vendor[0].Email)
	assert.Equal(t, 200.0, vendors[2].Total)

	clients, err := uc.TopClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, 1000.0, clients[0].Total)
	assert.Empty(t, clients[0].Client)
	assert.NotNil(t, clients[0].Client)
}

func TestTopClients_SinPedidos(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewReportUseCase(store.Reports(), store.Clients(), store.Users())
	top, err := uc.TopClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, top)
}
