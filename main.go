package main

import (
	"context"
	"os"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minhnq/campushub-BE/api"
	"github.com/minhnq/campushub-BE/internal/alert"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/minhnq/campushub-BE/internal/mailer"
	"github.com/minhnq/campushub-BE/internal/notification"
	"github.com/minhnq/campushub-BE/internal/retention"
	"github.com/minhnq/campushub-BE/internal/util"
	"github.com/minhnq/campushub-BE/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rs/zerolog/log"

	_ "github.com/minhnq/campushub-BE/docs"
)

//	@title			CampusHub Notification API
//	@version		1.0.0
//	@description	API documentation for the CampusHub notification service

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

	mailService, err := mailer.NewGmailSender(config.GmailSMTPUsername, config.GmailSMTPPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mailer service 😣")
	}

	redisOpt := asynq.RedisClientOpt{Addr: config.RedisServerAddress}
	taskDistributor := worker.NewTaskDistributor(redisOpt)

	go runTaskProcessor(redisOpt, store, mailService)
	go runRetentionSweeper(store, config)

	var alerter notification.Alerter
	if config.DiscordBotToken != "" && config.DiscordChannelID != "" {
		discordAlerter, err := alert.NewDiscordAlerter(config.DiscordBotToken, config.DiscordChannelID)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord alerter 😣")
		}
		alerter = discordAlerter
		log.Info().Msg("discord alerter created successfully ✅")
	}

	runHTTPServer(&config, store, redisDb, taskDistributor, alerter)
}

func runTaskProcessor(redisOpt asynq.RedisClientOpt, store db.Store, mailService mailer.EmailSender) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, store, mailService)

	log.Info().Msg("starting task processor")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}
}

func runRetentionSweeper(store db.Store, config util.Config) {
	sweeper, err := retention.NewSweeper(store, config.RetentionMaxAge, config.RetentionSweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create retention sweeper 😣")
	}

	if err = sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start retention sweeper 😣")
	}
}

func runHTTPServer(config *util.Config, store db.Store, redisDb *redis.Client, taskDistributor worker.TaskDistributor, alerter notification.Alerter) {
	server, err := api.NewServer(store, redisDb, taskDistributor, config, alerter)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	err = server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
