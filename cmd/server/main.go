package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/markaz-app/markaz/internal/db"
	"github.com/markaz-app/markaz/internal/http/middleware"
	"github.com/markaz-app/markaz/internal/redis"
)

func main() {
	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}
	store := db.NewStore(db.DB)

	redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)

	middleware.SetBrokerURL(env.MQTTBrokerURL)
	if middleware.BrokerEnabled() {
		if err := middleware.InitMQTT("markaz-server"); err != nil {
			log.Warn().Err(err).Msg("MQTT init failed; board notifications disabled")
		}
		defer middleware.CleanupMQTT()
	}

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	storageSystem := InitStorage(env)
	tmpl := LoadTemplates()

	RegisterRoutes(r, env, store, storageSystem, tmpl)

	log.Info().Str("address", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
