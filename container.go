package main

import (
	"fmt"
	"os"

	"github.com/dan3143/api-twitter/twitterapi"
	"go.uber.org/dig"
)

type Config struct {
	Port                string
	DatabaseName        string
	LoggingDBPath       string
	JWTKey              string
	TwitterAPIKey       string
	TwitterAPIBaseURL   string
	ProxyDSN            string
	TelegramAPIKey      string
	TelegramAdminChatID string
	ImportCSVPath       string
}

func ProvideConfig() (*Config, error) {
	jwtKey := os.Getenv(ENV_JWT_KEY)
	if jwtKey == "" {
		return nil, fmt.Errorf("jwt key should be set in .env: %s", ENV_JWT_KEY)
	}

	port := os.Getenv(ENV_PORT)
	if port == "" {
		port = "3000"
	}

	dbName := os.Getenv(ENV_DATABASE_NAME)
	if dbName == "" {
		dbName = "twitter.db"
	}

	loggingDBPath := os.Getenv(ENV_LOGGING_DATABASE_PATH)
	if loggingDBPath == "" {
		loggingDBPath = "logs.db"
	}

	return &Config{
		Port:                port,
		DatabaseName:        dbName,
		LoggingDBPath:       loggingDBPath,
		JWTKey:              jwtKey,
		TwitterAPIKey:       os.Getenv(ENV_TWITTER_API_KEY),
		TwitterAPIBaseURL:   os.Getenv(ENV_TWITTER_API_BASE_URL),
		ProxyDSN:            os.Getenv(ENV_PROXY_DSN),
		TelegramAPIKey:      os.Getenv(ENV_TELEGRAM_API_KEY),
		TelegramAdminChatID: os.Getenv(ENV_TELEGRAM_ADMIN_CHAT_ID),
		ImportCSVPath:       os.Getenv(ENV_IMPORT_CSV_PATH),
	}, nil
}

func ProvideDatabaseService(config *Config) (*DatabaseService, error) {
	return NewDatabaseService(config.DatabaseName)
}

func ProvideLoggingService(config *Config) (*LoggingService, error) {
	return NewLoggingService(config.LoggingDBPath)
}

func ProvideAuthService(config *Config) *AuthService {
	return NewAuthService(config.JWTKey)
}

func ProvideOwnershipService(databaseService *DatabaseService) *OwnershipService {
	return NewOwnershipService(databaseService)
}

func ProvideTwitterAPI(config *Config) *twitterapi.TwitterAPIService {
	return twitterapi.NewTwitterAPIService(config.TwitterAPIKey, config.TwitterAPIBaseURL, config.ProxyDSN)
}

func ProvideNotificationService(config *Config) (*NotificationService, error) {
	return NewNotificationService(config.TelegramAPIKey, config.TelegramAdminChatID)
}

func ProvideMiddleware(authService *AuthService, ownershipService *OwnershipService, loggingService *LoggingService) *Middleware {
	return NewMiddleware(authService, ownershipService, loggingService)
}

func ProvideTweetsHandler(databaseService *DatabaseService, twitterAPI *twitterapi.TwitterAPIService) *TweetsHandler {
	return NewTweetsHandler(databaseService, twitterAPI)
}

func ProvideUsersHandler(databaseService *DatabaseService, authService *AuthService, notificationService *NotificationService) *UsersHandler {
	return NewUsersHandler(databaseService, authService, notificationService)
}

func ProvideStatusHandler(databaseService *DatabaseService, loggingService *LoggingService) *StatusHandler {
	return NewStatusHandler(databaseService, loggingService)
}

func ProvideCleanupScheduler(loggingService *LoggingService) *CleanupScheduler {
	return NewCleanupScheduler(loggingService)
}

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(ProvideConfig); err != nil {
		return nil, fmt.Errorf("failed to provide config: %w", err)
	}

	if err := container.Provide(ProvideDatabaseService); err != nil {
		return nil, fmt.Errorf("failed to provide database service: %w", err)
	}

	if err := container.Provide(ProvideLoggingService); err != nil {
		return nil, fmt.Errorf("failed to provide logging service: %w", err)
	}

	if err := container.Provide(ProvideAuthService); err != nil {
		return nil, fmt.Errorf("failed to provide auth service: %w", err)
	}

	if err := container.Provide(ProvideOwnershipService); err != nil {
		return nil, fmt.Errorf("failed to provide ownership service: %w", err)
	}

	if err := container.Provide(ProvideTwitterAPI); err != nil {
		return nil, fmt.Errorf("failed to provide Twitter API: %w", err)
	}

	if err := container.Provide(ProvideNotificationService); err != nil {
		return nil, fmt.Errorf("failed to provide notification service: %w", err)
	}

	if err := container.Provide(ProvideMiddleware); err != nil {
		return nil, fmt.Errorf("failed to provide middleware: %w", err)
	}

	if err := container.Provide(ProvideTweetsHandler); err != nil {
		return nil, fmt.Errorf("failed to provide tweets handler: %w", err)
	}

	if err := container.Provide(ProvideUsersHandler); err != nil {
		return nil, fmt.Errorf("failed to provide users handler: %w", err)
	}

	if err := container.Provide(ProvideStatusHandler); err != nil {
		return nil, fmt.Errorf("failed to provide status handler: %w", err)
	}

	if err := container.Provide(ProvideCleanupScheduler); err != nil {
		return nil, fmt.Errorf("failed to provide cleanup scheduler: %w", err)
	}

	if err := container.Provide(NewApplication); err != nil {
		return nil, fmt.Errorf("failed to provide application: %w", err)
	}

	return container, nil
}
