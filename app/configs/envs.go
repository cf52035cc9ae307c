package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	JWTSecret string

	EmailHost     string
	EmailPort     string
	EmailUsername string
	EmailPassword string
	EmailFrom     string

	RabbitMQURL       string
	NotificationQueue string

	MediaRoot string
	AppURL    string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("no .env file found, relying on process environment")
	}

	env := ENV{
		DBHost:            os.Getenv("DB_HOST"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBPort:            os.Getenv("DB_PORT"),
		Port:              os.Getenv("APP_PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		EmailHost:         os.Getenv("EMAIL_HOST"),
		EmailPort:         os.Getenv("EMAIL_PORT"),
		EmailUsername:     os.Getenv("EMAIL_USERNAME"),
		EmailPassword:     os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:         os.Getenv("EMAIL_USERNAME"),
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		NotificationQueue: os.Getenv("NOTIFICATION_QUEUE"),
		MediaRoot:         os.Getenv("MEDIA_ROOT"),
		AppURL:            os.Getenv("APP_URL"),
	}

	if env.Port == "" {
		env.Port = ":8000"
	}
	if env.NotificationQueue == "" {
		env.NotificationQueue = "order_status_notifications"
	}
	if env.MediaRoot == "" {
		env.MediaRoot = "media"
	}

	return env
}
