package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	chimiddleware "github.com/go-chi/chi/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/nature-connect/market-backend/internal/eventengine"
	"github.com/nature-connect/market-backend/internal/features/order"
	"github.com/nature-connect/market-backend/internal/features/product"
	"github.com/nature-connect/market-backend/internal/handlerutils"
	"github.com/nature-connect/market-backend/internal/metrics"
	"github.com/nature-connect/market-backend/internal/middlewares"
	"github.com/nature-connect/market-backend/internal/storage"
)

type ServerConfig struct {
	Addr        string
	Store       *storage.Store
	AdminAPIKey string
	PublicDir   string
}

type server struct {
	*ServerConfig

	doneCh        chan struct{}   // used to signal internal go routines to shutdown
	internalSrvWG *sync.WaitGroup // used to wait for all internal go routines to finish before shutting down the server.

	eventEngine eventengine.SubscribeRegisterPublisher
	metrics     *metrics.Registry
	srv         *http.Server
}

func NewServer(serverConfig *ServerConfig) *server {
	srv := &server{
		ServerConfig:  serverConfig,
		doneCh:        make(chan struct{}),
		internalSrvWG: &sync.WaitGroup{},
	}

	return srv
}

func (s *server) Run() {
	s.prep()

	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Addr),
		Handler: s.routes(),
	}

	// start server and listen for [os.Signal] signals to gracefully shutdown.
	s.listenAndServe()
}

func (s *server) routes() *chi.Mux {
	router := chi.NewRouter()

	// strip trailing slashes so /api/products/ and /api/products are the
	// same route
	router.Use(chimiddleware.StripSlashes)

	router.Mount("/api", s.apiRouter())
	router.Handle("/metrics", s.metrics.Handler())

	// everything else serves the client application shell
	router.NotFound(s.serveClient())

	return router
}

func (s *server) listenAndServe() {
	shutdownCtx, shutdownCancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer shutdownCancel()

	errGrp, shutdownCtx := errgroup.WithContext(shutdownCtx)

	errGrp.Go(
		func() error {
			log.Printf("server started and is listening at port %s...\n", s.Addr)

			if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) && err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			return nil
		},
	)

	errGrp.Go(
		func() error {
			<-shutdownCtx.Done() // block and listen for shutdown signals
			log.Println("hold and wait, server is gracefully shutting down...")

			ctx, cancel := context.WithTimeout(
				context.Background(),
				(20 * time.Second),
			)
			defer cancel()

			log.Println("server has stopped receiving new requests")
			log.Println("waiting for all pending requests to finish....")
			if err := s.srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("server failed to shutdown gracefully: %w", err)
			}

			return nil
		},
	)

	if err := errGrp.Wait(); err != nil {
		log.Fatal(err.Error())
	}
	log.Println("all pending requests completed!")

	log.Println("waiting for all internal pending go routines....")
	close(s.doneCh)
	s.internalSrvWG.Wait()
	log.Println("all internal go routines are done")

	log.Println("server has been gracefully shutdown")
}

// prep prepares server dependencies needed for the server to function.
func (s *server) prep() {
	s.eventEngine = eventengine.NewEventEngine(
		&eventengine.EventEngineConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
		},
	)

	s.metrics = metrics.NewRegistry()
}

func (s *server) apiRouter() *chi.Mux {
	r := chi.NewRouter()

	// mounted routers keep their own 404 handler, so unmatched /api paths
	// fall back to the application shell like every other unknown path
	r.NotFound(s.serveClient())

	// health check
	r.Get("/health", handlerutils.MakeHandler(
		func(w http.ResponseWriter, r *http.Request) error {
			return handlerutils.WriteJSON(
				w,
				http.StatusOK,
				map[string]bool{"ok": true},
			)
		},
	))

	// middleware
	middleware := middlewares.NewMiddleware(
		s.AdminAPIKey,
	)

	// product feature
	productStore := product.NewStore(s.Store)
	productService := product.NewService(
		productStore,
		s.eventEngine,
	)
	productHandler := product.NewHandler(
		productService,
		middleware,
	)
	productHandler.RegisterRoutes(r)

	// order feature; reads the catalog through the product service so the
	// server stays the price authority
	orderStore := order.NewStore(s.Store)
	orderService := order.NewService(
		orderStore,
		productService,
		s.eventEngine,
	)
	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterRoutes(r)

	// metrics subscriber; wired last so every event name is registered
	metrics.NewHandlerEvents(
		&metrics.HandlerEventsConfig{
			DoneCh:        s.doneCh,
			InternalSrvWG: s.internalSrvWG,
			EventEngine:   s.eventEngine,
			Registry:      s.metrics,
		},
	)

	return r
}

// serveClient serves real files from the public dir and falls back to the
// application shell for every unknown path, so client-side routes work.
func (s *server) serveClient() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(
			s.PublicDir,
			filepath.Clean("/"+r.URL.Path),
		)

		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			http.ServeFile(w, r, requested)
			return
		}

		http.ServeFile(w, r, filepath.Join(s.PublicDir, "index.html"))
	}
}
