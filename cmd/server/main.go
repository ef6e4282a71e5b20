package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/velmir/catalog-core/internal/app/catalog/queries"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_product"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/get_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/queries/list_products"
	"github.com/velmir/catalog-core/internal/app/catalog/repo"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product_abstract"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/create_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/delete_product_url"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/save_product"
	"github.com/velmir/catalog-core/internal/app/catalog/usecases/update_product_url"
	"github.com/velmir/catalog-core/internal/pkg/clock"
	committer "github.com/velmir/catalog-core/internal/pkg/committer"
	"github.com/velmir/catalog-core/internal/pkg/config"
	"github.com/velmir/catalog-core/internal/pkg/locale"
	"github.com/velmir/catalog-core/internal/pkg/urlgen"
	httpcatalog "github.com/velmir/catalog-core/internal/transport/http/catalog"
	"github.com/velmir/catalog-core/internal/transport/http/middleware"
)

func main() {
	log := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          "catalog",
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	if lvl, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	locales, err := locale.NewRegistry(cfg.Locales...)
	if err != nil {
		log.Fatal("configure locales", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		log.Fatal("spanner client", "err", err)
	}
	defer client.Close()

	clk := clock.RealClock{}
	productRepo := repo.NewProductRepo()
	abstractRepo := repo.NewProductAbstractRepo()
	localizedRepo := repo.NewLocalizedAttributesRepo()
	priceRepo := repo.NewPriceRepo()
	urlRepo := repo.NewURLRepo()
	touchRepo := repo.NewTouchRepo()
	cm := committer.NewAdapter(client)
	readModel := queries.NewSpannerReadModel(client)
	urlGen := urlgen.NewGenerator()

	// CQRS wiring
	cmds := httpcatalog.Commands{
		CreateProduct:  create_product.NewInteractor(productRepo, localizedRepo, priceRepo, cm, readModel, locales, clk, log, nil, nil),
		SaveProduct:    save_product.NewInteractor(productRepo, localizedRepo, priceRepo, cm, readModel, locales, clk, log, nil, nil),
		CreateAbstract: create_product_abstract.NewInteractor(abstractRepo, localizedRepo, touchRepo, cm, readModel, locales, clk, log),
		CreateURL:      create_product_url.NewInteractor(urlRepo, touchRepo, cm, readModel, urlGen, locales, clk, log),
		UpdateURL:      update_product_url.NewInteractor(urlRepo, touchRepo, cm, readModel, urlGen, locales, clk, log),
		DeleteURL:      delete_product_url.NewInteractor(urlRepo, touchRepo, cm, readModel, locales, clk, log),
	}
	qrys := httpcatalog.Queries{
		GetProduct:    get_product.NewHandler(readModel),
		ListProducts:  list_products.NewHandler(readModel),
		GetProductURL: get_product_url.NewHandler(readModel, locales),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	httpcatalog.NewHandler(cmds, qrys).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http serve", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}

	log.Info("server stopped")
}
