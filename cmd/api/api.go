package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chuling-hu/EoDeliveryForOffices/docs"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/queue"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/ratelimiter"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/service"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/store/mongo"
	"github.com/chuling-hu/EoDeliveryForOffices/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config            config
	logger            *zap.SugaredLogger
	rateLimiter       ratelimiter.Limiter
	storage           *mongo.Storage
	broker            queue.Broker
	scheduleService   *service.ScheduleService
	storefrontService *service.StorefrontService
	orderService      *service.OrderService
	orderEventsWorker *worker.OrderEventsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	timezone    string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		// admin: menu availability scheduling
		r.Get("/schedule/{date}", app.getScheduleHandler)
		r.Put("/schedule/{date}", app.saveScheduleHandler)
		r.Post("/schedule/batch", app.batchSaveScheduleHandler)

		// customer: published menus and the date picker
		r.Get("/menu/{date}", app.getPublishedMenuHandler)
		r.Get("/menu/history", app.getMenuHistoryHandler)
		r.Get("/calendar/{year}/{month}", app.getMonthViewHandler)

		// orders and pickup
		r.Post("/orders", app.createOrderHandler)
		r.Get("/orders", app.listOrdersHandler)
		r.Get("/orders/{order_id}", app.getOrderHandler)
		r.Get("/orders/{order_id}/audit", app.getOrderAuditHandler)
		r.Patch("/orders/{order_id}/pickup", app.setPickedUpHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "EoDelivery for Offices"
	docs.SwaggerInfo.Description = "Office lunch pre-ordering API"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// worker
	if app.orderEventsWorker != nil {
		if err := app.orderEventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order events worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.orderEventsWorker != nil {
			app.orderEventsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
