package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	postgresStorage "github.com/clubmate/backend/internal/adapters/database/postgres"
	"github.com/clubmate/backend/internal/adapters/database/redis"
	stripeAdapter "github.com/clubmate/backend/internal/adapters/payment/stripe"
	"github.com/clubmate/backend/pkg/logger"
)

type Config struct {
	Database   *gorm.DB
	Redis      *redis.Client
	SMTPDialer *gomail.Dialer
	Stripe     stripeAdapter.Config

	MailFrom   string
	MailDomain string
	// JoinLinkBase is the public base URL invitation links are built on.
	JoinLinkBase string
	LogoPath     string
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if viper.GetBool("settings.debug") {
		gormConfig.Logger = gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold: time.Second,
				LogLevel:      gormLogger.Info,
				Colorful:      true,
			},
		)
	}

	dsn := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=disable",
		viper.GetString("service.database.user"),
		viper.GetString("service.database.password"),
		viper.GetString("service.database.name"),
		viper.GetString("service.database.host"),
		viper.GetInt("service.database.port"),
	)

	database, err := gorm.Open(postgresDriver.Open(dsn), gormConfig)
	if err != nil {
		logger.Log.Panicf("Failed to connect to the database: %v", err)
	} else {
		logger.Log.Info("Successfully connected to the database")
	}

	if errMigrate := postgresStorage.Migrate(database); errMigrate != nil {
		logger.Log.Panicf("Failed to migrate database: %v", errMigrate)
	}

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	smtpDialer := gomail.NewDialer(
		viper.GetString("service.smtp.host"),
		viper.GetInt("service.smtp.port"),
		viper.GetString("service.smtp.user"),
		viper.GetString("service.smtp.pass"),
	)

	return &Config{
		Database:   database,
		Redis:      redisClient,
		SMTPDialer: smtpDialer,
		Stripe: stripeAdapter.Config{
			SecretKey:     viper.GetString("service.stripe.secret-key"),
			WebhookSecret: viper.GetString("service.stripe.webhook-secret"),
			PriceIDs:      viper.GetStringMapString("service.stripe.price-ids"),
			SuccessURL:    viper.GetString("service.stripe.success-url"),
			CancelURL:     viper.GetString("service.stripe.cancel-url"),
		},
		MailFrom:     viper.GetString("service.smtp.email"),
		MailDomain:   viper.GetString("service.smtp.domain"),
		JoinLinkBase: viper.GetString("settings.join-link-base"),
		LogoPath:     viper.GetString("settings.logo-path"),
	}
}
