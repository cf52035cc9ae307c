package cmd

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/grabpoint/api/app/configs"
	"github.com/grabpoint/api/app/db/seeders"
	"github.com/grabpoint/api/app/models"
	"github.com/grabpoint/api/app/models/migrations"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Info().Msg("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with demo users, categories and products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Info().Msg("seeding complete")
					return nil
				},
			},
			{
				Name:  "seed-admin",
				Usage: "Create a verified staff user for operator access",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}

					hash, err := bcrypt.GenerateFromPassword([]byte(c.String("password")), bcrypt.DefaultCost)
					if err != nil {
						return err
					}

					user := &models.User{
						Username:   c.String("username"),
						Email:      c.String("email"),
						Password:   string(hash),
						IsVerified: true,
						IsStaff:    true,
					}
					if err := db.WithContext(ctx).Create(user).Error; err != nil {
						return err
					}
					log.Info().Str("username", user.Username).Msg("staff user created")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
