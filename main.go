package main

import (
	"context"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhanle/servio-BE/api"
	db "github.com/minhanle/servio-BE/internal/db/sqlc"
	"github.com/minhanle/servio-BE/internal/digest"
	"github.com/minhanle/servio-BE/internal/event"
	"github.com/minhanle/servio-BE/internal/notification"
	"github.com/minhanle/servio-BE/internal/util"
	"github.com/minhanle/servio-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/rs/zerolog/log"

	_ "github.com/minhanle/servio-BE/docs"
)

//	@title			Servio Platform API
//	@version		1.0.0
//	@description	API documentation for the Servio notification service

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	log.Info().Msg("configurations loaded successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}

	pingErr := connPool.Ping(context.Background())
	if pingErr != nil {
		log.Fatal().Err(pingErr).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	redisDb := redis.NewClient(&redis.Options{
		Addr:     config.RedisServerAddress,
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Create the Firebase app used for mobile push delivery
	firebaseApp, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(config.FirebaseCredentialsFile))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create firebase app 😣")
	}

	pushSender, err := notification.NewFCMSender(context.Background(), firebaseApp)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create push sender 😣")
	}
	log.Info().Msg("push sender created successfully ✅")

	// Realtime channel: SSE hub shared by the API handlers and the dispatcher
	eventSender := event.NewSSEServer()
	go eventSender.Run()

	cache := notification.NewRedisCache(redisDb)

	notificationService := notification.NewService(store, cache, pushSender, eventSender)
	log.Info().Msg("notification service created successfully ✅")

	redisOpt := asynq.RedisClientOpt{Addr: config.RedisServerAddress}
	taskDistributor := worker.NewTaskDistributor(redisOpt)

	go runTaskProcessor(redisOpt, notificationService, pushSender)
	go runDigestScheduler(&config, store, taskDistributor)

	runHTTPServer(&config, store, notificationService, taskDistributor, eventSender)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, notificationService *notification.Service, pushSender notification.PushSender) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, notificationService, pushSender)
	log.Info().Msg("task processor started ✅")

	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runDigestScheduler(config *util.Config, store db.Store, taskDistributor worker.TaskDistributor) {
	digestScheduler, err := digest.NewScheduler(store, taskDistributor, config.UnreadDigestCronSpec)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create digest scheduler 😣")
	}

	if err = digestScheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start digest scheduler 😣")
	}
	log.Info().Msg("digest scheduler started ✅")
}

func runHTTPServer(config *util.Config, store db.Store, notificationService *notification.Service, taskDistributor worker.TaskDistributor, eventSender event.EventSender) {
	server, err := api.NewServer(store, notificationService, taskDistributor, eventSender, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
