package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/middleware"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/scantoserve/scantoserve/internal/assist"
	"github.com/scantoserve/scantoserve/internal/cart"
	"github.com/scantoserve/scantoserve/internal/catalog"
	"github.com/scantoserve/scantoserve/internal/checkout"
	"github.com/scantoserve/scantoserve/internal/mongo"
	"github.com/scantoserve/scantoserve/internal/order"
	"github.com/scantoserve/scantoserve/internal/session"
	"github.com/scantoserve/scantoserve/internal/theme"
	"github.com/scantoserve/scantoserve/pkg"
)

const (
	appNamespace = "SERVE"
	appName      = "scantoserve"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	seedCtx, cancelSeeds := context.WithCancel(ctx)
	defer cancelSeeds()

	baseRepo := mongo.NewBaseRepo(config, logger)
	err = baseRepo.Start(ctx)
	if err != nil {
		log.Fatalf("%s(%s) cannot start base repository: %v", appName, appVersion, err)
	}

	db := baseRepo.Database()
	if db == nil {
		log.Fatalf("%s(%s) cannot initialize repository database: %v", appName, appVersion, errors.New("repository database is nil"))
	}

	orderRepo := mongo.NewOrderRepo(db)

	natsURL := config.GetStringOrDef("nats.url", "nats://localhost:4222")

	pub, err := pkg.NewNATSPublisher(natsURL)
	if err != nil {
		log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
	}

	// The backup bucket is best-effort: without it orders still persist.
	var fallback order.FallbackCache
	kv, err := pkg.NewNATSKeyValue(ctx, natsURL)
	if err != nil {
		logger.Error("cannot create backup bucket, continuing without it", "error", err)
	} else {
		fallback = kv
	}

	store := order.NewStore(orderRepo, fallback, pub, logger)

	sub, err := pkg.NewNATSSubscriber(natsURL, logger)
	if err != nil {
		log.Fatalf("%s(%s) cannot connect to NATS subscriber: %v", appName, appVersion, err)
	}
	activity := order.NewActivityFeed(0)
	eventSubscriber := order.NewEventSubscriber(sub, activity, logger)

	interval, err := time.ParseDuration(config.GetStringOrDef("simulator.interval", "5s"))
	if err != nil {
		logger.Error("invalid simulator interval, using default", "error", err)
		interval = order.DefaultSimulatorInterval
	}
	simulator := order.NewSimulator(store, interval, logger)

	cat := catalog.NewDefault()
	carts := cart.NewRegistry(logger)
	checkouts := checkout.NewRegistry(carts, store, logger)
	sessions := session.NewRegistry(logger)
	themes := theme.NewStore(logger)

	var responder assist.Responder = assist.StaticResponder{Reply: assist.FallbackReply}
	apiKey, _ := config.GetString("assist.api_key")
	if apiKey != "" {
		model := config.GetStringOrDef("assist.model", "gemini-1.5-flash")
		llm, err := googleai.New(ctx, googleai.WithAPIKey(apiKey), googleai.WithDefaultModel(model))
		if err != nil {
			logger.Error("cannot initialize language model, using static replies", "error", err)
		} else {
			responder = assist.NewLLMResponder(llm, cat)
		}
	}
	assistant := assist.NewAssistant(responder, nil, nil, logger)

	catalogHandler := catalog.NewHandler(cat, config, logger)
	cartHandler := cart.NewHandler(carts, cat, config, logger)
	checkoutHandler := checkout.NewHandler(checkouts, config, logger)
	orderHandler := order.NewHandler(store, activity, config, logger)
	assistHandler := assist.NewHandler(assistant, config, logger)
	sessionHandler := session.NewHandler(sessions, config, logger)
	themeHandler := theme.NewHandler(themes, config, logger)

	publisherLifecycle := apt.LifecycleHooks{
		OnStop: func(context.Context) error {
			return pub.Close()
		},
	}

	simulatorLifecycle := apt.LifecycleHooks{
		OnStart: simulator.Start,
		OnStop:  simulator.Stop,
	}

	demoEnabled, _ := config.GetString("seeding.demo")
	var seedHooks apt.LifecycleHooks
	if demoEnabled == "true" {
		logger.Info("Demo seeding enabled")
		seedHooks = apt.LifecycleHooks{
			OnStart: order.DemoSeedingFunc(seedCtx, orderRepo, db, logger),
			OnStop: func(context.Context) error {
				cancelSeeds()
				return nil
			},
		}
	}

	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: logger,
	})

	lifecycles := []interface{}{
		apt.LifecycleHooks{OnStop: baseRepo.Stop},
		publisherLifecycle,
		simulatorLifecycle,
		apt.LifecycleHooks{
			OnStart: eventSubscriber.Start,
			OnStop: func(context.Context) error {
				return sub.Close()
			},
		},
	}
	if kv != nil {
		lifecycles = append(lifecycles, apt.LifecycleHooks{
			OnStop: func(context.Context) error {
				return kv.Close()
			},
		})
	}
	if demoEnabled == "true" {
		lifecycles = append(lifecycles, seedHooks)
	}

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port",
			catalogHandler,
			cartHandler,
			checkoutHandler,
			orderHandler,
			assistHandler,
			sessionHandler,
			themeHandler,
		),
		apt.WithLifecycle(lifecycles...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	err = ms.Run(ctx)
	if err != nil {
		_ = baseRepo.Stop(context.Background())
		log.Fatalf("%s(%s) stopped: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
