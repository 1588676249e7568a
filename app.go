package main

import (
	"log"

	"github.com/gin-gonic/gin"
)

type Application struct {
	config           *Config
	databaseService  *DatabaseService
	loggingService   *LoggingService
	middleware       *Middleware
	tweetsHandler    *TweetsHandler
	usersHandler     *UsersHandler
	statusHandler    *StatusHandler
	cleanupScheduler *CleanupScheduler
}

func NewApplication(
	config *Config,
	databaseService *DatabaseService,
	loggingService *LoggingService,
	middleware *Middleware,
	tweetsHandler *TweetsHandler,
	usersHandler *UsersHandler,
	statusHandler *StatusHandler,
	cleanupScheduler *CleanupScheduler,
) (*Application, error) {
	return &Application{
		config:           config,
		databaseService:  databaseService,
		loggingService:   loggingService,
		middleware:       middleware,
		tweetsHandler:    tweetsHandler,
		usersHandler:     usersHandler,
		statusHandler:    statusHandler,
		cleanupScheduler: cleanupScheduler,
	}, nil
}

func (app *Application) Initialize() error {
	log.Println("Database service initialized successfully")
	log.Println("Logging service initialized successfully")

	app.cleanupScheduler.Start()

	if app.config.ImportCSVPath != "" {
		log.Printf("CSV import path specified: %s", app.config.ImportCSVPath)
		importer := NewCSVImporter(app.databaseService)
		result, err := importer.ImportCSV(app.config.ImportCSVPath)
		if err != nil {
			log.Printf("CSV import failed: %v", err)
		} else {
			log.Printf("CSV import successful: %s", result.String())
		}
	}

	return nil
}

// Router builds the HTTP surface. Split out from Run so tests can serve
// the exact production routing in-process.
func (app *Application) Router() *gin.Engine {
	router := gin.New()
	router.Use(app.middleware.RequestLogger(), gin.Recovery())

	m := app.middleware

	tweets := router.Group("/tweets")
	tweets.GET("", m.Authenticator(), app.tweetsHandler.List)
	tweets.POST("", m.Authenticator(), app.tweetsHandler.Create)
	tweets.DELETE("", m.Authenticator(), m.TweetAuthorization(), app.tweetsHandler.Destroy)
	tweets.GET("/search", app.tweetsHandler.Search)
	tweets.POST("/comments", m.Authenticator(), app.tweetsHandler.CreateComment)
	tweets.DELETE("/comments", m.Authenticator(), m.CommentAuthorization(), app.tweetsHandler.DeleteComment)
	tweets.POST("/likes", m.Authenticator(), app.tweetsHandler.Likes)
	tweets.GET("/external/:username", m.Authenticator(), app.tweetsHandler.ExternalByUsername)
	tweets.GET("/:id", app.tweetsHandler.Find)

	users := router.Group("/users")
	users.GET("", m.Authenticator(), app.usersHandler.List)
	users.POST("", app.usersHandler.Create)
	users.DELETE("", m.Authenticator(), m.UserAuthorization(), app.usersHandler.Remove)
	users.POST("/login", app.usersHandler.Login)
	users.GET("/logout", app.usersHandler.Logout)
	users.GET("/:id", app.usersHandler.Find)
	users.PUT("/:id", m.Authenticator(), m.UserAuthorization(), app.usersHandler.Update)
	// The parameter doubles as a username; gin requires one name per
	// position, so the handler reads :id and resolves it as a username.
	users.GET("/:id/tweets", app.usersHandler.TweetsOfUser)

	router.GET("/status", app.statusHandler.Status)

	return router
}

func (app *Application) Run() error {
	router := app.Router()
	log.Printf("Listening on :%s", app.config.Port)
	return router.Run(":" + app.config.Port)
}

func (app *Application) Shutdown() {
	log.Println("Shutting down application...")

	app.cleanupScheduler.Stop()

	app.databaseService.Close()
	app.loggingService.Close()

	log.Println("Application shutdown completed")
}
