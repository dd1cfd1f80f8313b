package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	"github.com/stockroom/inventory-service/internal/app/product/queries"
	"github.com/stockroom/inventory-service/internal/app/product/queries/get_product"
	"github.com/stockroom/inventory-service/internal/app/product/queries/list_products"
	"github.com/stockroom/inventory-service/internal/app/product/repo"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/change_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/create_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/create_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/delete_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/set_category_status"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_category"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_product"
	"github.com/stockroom/inventory-service/internal/app/product/usecases/update_stock"
	"github.com/stockroom/inventory-service/internal/config"
	"github.com/stockroom/inventory-service/internal/pkg/clock"
	committer "github.com/stockroom/inventory-service/internal/pkg/committer"
	"github.com/stockroom/inventory-service/internal/pkg/rediscache"
	httpproduct "github.com/stockroom/inventory-service/internal/transport/http/product"
)

func main() {
	const op = "main"

	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Error("spanner client", slog.String("op", op), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	clk := clock.RealClock{}
	prodRepo := repo.NewProductRepo()
	catRepo := repo.NewCategoryRepo()
	outboxRepo := repo.NewOutboxRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	cache := rediscache.New(redisClient)

	cmds := httpproduct.Commands{
		CreateProduct:     create_product.NewInteractor(readModel, prodRepo, outboxRepo, cm, clk),
		UpdateProduct:     update_product.NewInteractor(readModel, prodRepo, outboxRepo, cm, clk),
		UpdateStock:       update_stock.NewInteractor(readModel, prodRepo, outboxRepo, cm, clk),
		ChangeCategory:    change_category.NewInteractor(readModel, prodRepo, outboxRepo, cm, clk),
		DeleteProduct:     delete_product.NewInteractor(readModel, prodRepo, outboxRepo, cm, clk),
		CreateCategory:    create_category.NewInteractor(catRepo, outboxRepo, cm, clk),
		UpdateCategory:    update_category.NewInteractor(readModel, catRepo, outboxRepo, cm, clk),
		SetCategoryStatus: set_category_status.NewInteractor(readModel, catRepo, outboxRepo, cm, clk),
	}
	qrys := httpproduct.Queries{
		GetProduct:   get_product.NewHandler(readModel),
		ListProducts: list_products.NewHandler(readModel, cache, log, cfg.Cache.SlidingTTL, cfg.Cache.AbsoluteTTL),
		ReadModel:    readModel,
	}

	h := httpproduct.NewHandler(cmds, qrys, log)
	router := httpproduct.NewRouter(h, log)

	srv := &http.Server{
		Addr:    cfg.HTTPServerAddr,
		Handler: router,
	}

	go func() {
		log.Info("http server listening", slog.String("op", op), slog.String("addr", cfg.HTTPServerAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve", slog.String("op", op), slog.String("error", err.Error()))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received", slog.String("op", op))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", slog.String("op", op), slog.String("error", err.Error()))
	}

	log.Info("server stopped", slog.String("op", op))
}
