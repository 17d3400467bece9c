package container

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/quizgenie-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/auth"
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/events"
	"github.com/saulo-duarte/quizgenie-lambda/internal/gateway"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
	"github.com/saulo-duarte/quizgenie-lambda/internal/quiz"
	"github.com/saulo-duarte/quizgenie-lambda/internal/router"
	"gorm.io/gorm"
)

type Container struct {
	Config           config.Config
	Engine           *generation.Engine
	EventsContainer  *events.EventsContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	GatewayContainer *gateway.GatewayContainer
	QuizContainer    *quiz.QuizContainer
}

// New wires every feature. The database is optional: without DATABASE_DSN
// the functions and the gateway still run, events are not persisted and
// /quizzes is not mounted.
func New(cfg config.Config) *Container {
	config.Init()
	log := config.WithContext(context.Background())

	var db *gorm.DB
	if cfg.DatabaseDSN != "" {
		if err := config.Connect(context.Background(), cfg.DatabaseDriver, cfg.DatabaseDSN); err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		db = config.DB
	} else {
		log.Warn("DATABASE_DSN not set, running without persistence")
	}

	if cfg.JWTSecret != "" {
		auth.Init()
	} else {
		log.Warn("JWT_SECRET not set, app API disabled")
	}

	return Build(cfg, db)
}

// Build assembles the containers around an already opened database, which
// may be nil.
func Build(cfg config.Config, db *gorm.DB) *Container {
	engine := generation.NewEngine(generation.Options{
		Seed:            cfg.RandomSeed,
		SimulateLatency: cfg.SimulatedLatency,
	})

	eventsContainer := events.NewEventsContainer(db)
	aiQuizContainer := aiquiz.NewAIQuizContainer(engine, cfg.ExtractionMode)
	gatewayContainer := gateway.NewGatewayContainer(
		engine,
		aiQuizContainer.Service,
		eventsContainer.Recorder,
		cfg.FunctionsURL,
		cfg.FunctionsAPIKey,
		cfg.RemoteTimeout,
	)

	var quizContainer *quiz.QuizContainer
	if db != nil {
		quizContainer = quiz.NewQuizContainer(db)
	}

	return &Container{
		Config:           cfg,
		Engine:           engine,
		EventsContainer:  eventsContainer,
		AIQuizContainer:  aiQuizContainer,
		GatewayContainer: gatewayContainer,
		QuizContainer:    quizContainer,
	}
}

func (c *Container) Router() http.Handler {
	cfg := router.RouterConfig{
		AIQuizHandler:  c.AIQuizContainer.Handler,
		GatewayHandler: c.GatewayContainer.Handler,
		AuthEnabled:    c.Config.JWTSecret != "",
	}
	if c.QuizContainer != nil {
		cfg.QuizHandler = c.QuizContainer.Handler
	}
	return router.New(cfg)
}

// Migrate creates the quiz and event tables.
func Migrate(db *gorm.DB) error {
	if err := quiz.AutoMigrate(db); err != nil {
		return err
	}
	return events.AutoMigrate(db)
}
