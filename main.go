package main

import (
	"context"
	"net/http"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/grabpoint/api/app/cmd"
	"github.com/grabpoint/api/app/configs"
	"github.com/grabpoint/api/app/routes"
	"github.com/grabpoint/api/app/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	env := configs.LoadEnv()

	db, err := configs.OpenConnection(env)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connected")

	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	var notifier services.Notifier = services.LogNotifier{}
	if env.RabbitMQURL != "" {
		conn, err := amqp.Dial(env.RabbitMQURL)
		if err != nil {
			log.Fatal().Err(err).Msg("rabbitmq connection failed")
		}
		defer conn.Close()

		amqpNotifier, err := services.NewAMQPNotifier(conn, env.NotificationQueue)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up notification queue")
		}
		defer amqpNotifier.Close()
		notifier = amqpNotifier

		consumer := services.NewStatusConsumer(conn, env.NotificationQueue, mailer)
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				log.Error().Err(err).Msg("status notification consumer stopped")
			}
		}()
		log.Info().Str("queue", env.NotificationQueue).Msg("notification pipeline ready")
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, status notifications will only be logged")
	}

	router := routes.NewRouter(db, env, notifier, mailer)

	server := http.Server{
		Addr:              env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", server.Addr).Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
