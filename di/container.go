package di

import (
	"context"
	"fmt"
	"log"

	"vh-server/config"
	"vh-server/dao/redis"
	"vh-server/db"
	"vh-server/server"
	"vh-server/server/handlers"
	services "vh-server/service"
	"vh-server/util"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	RedisHoursDao          *redis.RedisHoursDAO
	RedisEventsDao         *redis.RedisEventsDAO
	HoursService           *services.HoursService
	EventService           *services.EventService
	StatusRefresherService *services.StatusRefresherService
	HoursHandler           *handlers.HoursHandler
	EventHandler           *handlers.EventHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	HoursHttpServer        *server.HoursHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.RedisAddress(),
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize DAOs
	redisHoursDao := redis.NewRedisHoursDAO(redisClient)
	redisEventsDao := redis.NewRedisEventsDAO(redisClient)

	// Shared clock; services never read ambient time directly
	clock := util.SystemClock{}

	// Initialize service layer
	hoursService := services.NewHoursService(redisHoursDao, clock)
	eventService := services.NewEventService(redisEventsDao, clock)
	statusRefresherService := services.NewStatusRefresherService(redisHoursDao, clock)

	// Initialize handlers
	hoursHandler := handlers.NewHoursHandler(hoursService)
	eventHandler := handlers.NewEventHandler(eventService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(hoursHandler, eventHandler, muxRouter)

	// Initialize hours http server
	hoursHttpServer := server.NewHoursHttpServer(router, muxRouter, config.ServerAddress())

	return &Container{
		RedisClient:            redisClient,
		RedisHoursDao:          redisHoursDao,
		RedisEventsDao:         redisEventsDao,
		HoursService:           hoursService,
		EventService:           eventService,
		StatusRefresherService: statusRefresherService,
		HoursHandler:           hoursHandler,
		EventHandler:           eventHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		HoursHttpServer:        hoursHttpServer,
	}
}
