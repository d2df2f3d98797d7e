package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/crm-ventas-api/internal/application/analytics"
	"github.com/jhoicas/crm-ventas-api/internal/application/auth"
	"github.com/jhoicas/crm-ventas-api/internal/application/orders"
	"github.com/jhoicas/crm-ventas-api/internal/application/usecase"
	"github.com/jhoicas/crm-ventas-api/internal/domain/repository"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/crm-ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-ventas-api/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/crm-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/crm-ventas-api/pkg/config"
	"github.com/jhoicas/crm-ventas-api/pkg/logger"
)

// storage puertos de persistencia del backend elegido en STORAGE.
type storage struct {
	users    repository.UserRepository
	products repository.ProductRepository
	clients  repository.ClientRepository
	orders   repository.OrderRepository
	reports  repository.ReportRepository
	tx       orders.TxRunner
	close    func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer store.close()

	authUC := auth.NewAuthUseCase(store.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(store.products)
	clientUC := usecase.NewClientUseCase(store.clients)
	orderUC := orders.NewOrderUseCase(store.tx, store.clients, store.orders)
	reportUC := analytics.NewReportUseCase(store.reports, store.clients, store.users)

	schema, err := gql.NewSchema(gql.Resolvers{
		AuthUC:    authUC,
		ProductUC: productUC,
		ClientUC:  clientUC,
		OrderUC:   orderUC,
		ReportUC:  reportUC,
		Log:       log.With().Str("component", "graphql").Logger(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		Schema:   schema,
		Verifier: authUC,
		AppName:  cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("GraphQL disponible en /graphql")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStorage arma los repositorios. STORAGE=memory sirve para desarrollo local sin base de datos.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.App.Storage == config.StorageMemory {
		s := memory.NewStore()
		return &storage{
			users:    s.Users(),
			products: s.Products(),
			clients:  s.Clients(),
			orders:   s.Orders(),
			reports:  s.Reports(),
			tx:       s,
			close:    func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &storage{
		users:    postgres.NewUserRepository(pool),
		products: postgres.NewProductRepository(pool),
		clients:  postgres.NewClientRepository(pool),
		orders:   postgres.NewOrderRepository(pool),
		reports:  postgres.NewReportRepository(pool),
		tx:       postgres.NewTxRunner(pool),
		close:    pool.Close,
	}, nil
}
