// Package classification Placelists Service.
//
// # Lists of places, events at places and the notifications about them
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//	Version: 0.1.0
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
//	SecurityDefinitions:
//	  oauth2:
//	    type: oauth2
//	    tokenUrl: /not-valid--tokens-are-issued-by-the-identity-provider
//	    flow: password
//
// swagger:meta
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/internal/log"
	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/internal/server"
	"github.com/placelists/placelists/pkg/config"
	"github.com/placelists/placelists/pkg/event"
	"github.com/placelists/placelists/pkg/group"
	"github.com/placelists/placelists/pkg/list"
	"github.com/placelists/placelists/pkg/notification"
	"github.com/placelists/placelists/pkg/place"
	"github.com/placelists/placelists/pkg/storage"
	"github.com/placelists/placelists/pkg/tracing"
	"github.com/placelists/placelists/pkg/user"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Failed to run placelists", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env file is fine, the environment might be set already
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := slog.New(log.New(log.NewPrettyJSONHandler(os.Stdout, &log.PrettyJSONHandlerOptions{
		HandlerOptions: slog.HandlerOptions{AddSource: true, Level: cfg.Log.GetLevel()},
		PrettyPrint:    cfg.Log.Pretty,
	})))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var shutdownTracing tracing.Shutdown = tracing.Noop
	if cfg.Tracing.Enabled {
		shutdownTracing, err = tracing.New(cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return err
		}
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Failed to shut down tracing", "error", err)
		}
	}()

	db, err := storage.NewDatabase(logger, cfg.Postgresql, cfg.Tracing.Enabled)
	if err != nil {
		return err
	}

	redis, err := storage.NewRedis(cfg.Redis)
	if err != nil {
		return err
	}
	defer redis.Close()

	publicKey, err := cfg.Authentication.GetPublicKey()
	if err != nil {
		return err
	}

	userService := user.NewService(logger, user.NewRepository(db), redis)
	groupService := group.NewService(group.NewRepository(db), userService)
	placeService := place.NewService(place.NewRepository(db))
	listService := list.NewService(list.NewRepository(db))

	g, ctx := errgroup.WithContext(ctx)

	notificationRepository := notification.NewRepository(db)
	var sink notification.Sink = notificationRepository
	if cfg.RabbitMQ.Enabled() {
		conn, err := amqp.Dial(cfg.RabbitMQ.GetURI())
		if err != nil {
			return fmt.Errorf("failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		publisher, err := notification.NewPublisher(conn, cfg.RabbitMQ.NotificationQueue)
		if err != nil {
			return err
		}
		defer publisher.Close()
		sink = publisher

		consumer, err := notification.NewConsumer(logger, conn, cfg.RabbitMQ.NotificationQueue, notificationRepository)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return consumer.Consume(ctx)
		})
	}
	notificationService := notification.NewService(logger, sink, notificationRepository)
	eventService := event.NewService(event.NewRepository(db), groupService, notificationService)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	authentication := middleware.NewAuthentication(logger, publicKey, userService)
	authorization := middleware.NewAuthorization(logger)

	engine := server.GetEngine(logger, cfg.BasePath, cfg.Tracing.Enabled)
	api := engine.Group(cfg.BasePath)
	user.Routes(api, authentication, user.NewHandler(userService))
	group.Routes(api, authentication, authorization, group.NewHandler(groupService))
	place.Routes(api, authentication, place.NewHandler(placeService))
	list.Routes(api, authentication, list.NewHandler(listService))
	event.Routes(api, authentication, event.NewHandler(eventService))
	notification.Routes(api, authentication, notification.NewHandler(notificationService))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           engine.Handler(),
		ReadHeaderTimeout: 3 * time.Second,
	}

	g.Go(func() error {
		logger.Info("Listening and serving HTTP", "address", srv.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %v", err)
		}

		notificationService.Wait()
		return nil
	})

	return g.Wait()
}
