package main

import (
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/recollect/recollect/internal/app/server"
	"github.com/recollect/recollect/internal/app/service"
	"github.com/recollect/recollect/internal/config"
	"github.com/recollect/recollect/internal/logger"
	"github.com/recollect/recollect/internal/repository"
	"github.com/recollect/recollect/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	// .env is optional; real deployments inject the environment.
	_ = godotenv.Load()

	options := config.Parse()
	hostname := options.Port

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	// Refusing to start beats running an API nobody can call.
	if err := options.Validate(); err != nil {
		zapLogger.Fatal("invalid configuration", zap.Error(err))
	}

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s service.Storage

	switch {
	case options.DatabaseDSN != "":
		zapLogger.Info("using db", zap.String("table", options.TableName))
		db := repository.InitDB(options.DatabaseDSN, options.TableName, zapLogger)
		defer db.Close()
		s = repository.CreateBookmarkRepository(db, options.TableName, zapLogger)
		zapLogger.Info("Database connected and table ready.")
	case options.RedisAddr != "":
		zapLogger.Info("using redis", zap.String("addr", options.RedisAddr))
		client := redis.NewClient(&redis.Options{Addr: options.RedisAddr})
		defer client.Close()
		s = storage.NewRedisStorage(client, zapLogger)
	case options.FilePath != "":
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))

		fs, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		s = fs
	default:
		zapLogger.Info("using in memory storage")

		mem, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		s = mem
	}

	bookmarkService := service.NewBookmark(s, zapLogger)
	r := server.Init(options.APIKey, zapLogger, bookmarkService)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("recollect.app", "www.recollect.app"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("hostname", hostname))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("hostname", hostname))
		if err := http.ListenAndServe(hostname, r); err != nil {
			panic(err)
		}
	}
}
