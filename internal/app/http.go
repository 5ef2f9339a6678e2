package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/joshgeng1116/TodoApp/internal/config"
	v1 "github.com/joshgeng1116/TodoApp/internal/delivery/http/v1"
	"github.com/joshgeng1116/TodoApp/internal/services"
	"github.com/joshgeng1116/TodoApp/internal/store"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE"}
	corsCfg.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsCfg))

	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with the configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	// The store lives exactly as long as the process; everything mutates
	// it through the service handle, never through package state.
	todoService := services.NewTodoService(globalLogger, store.New())
	v1Handler := v1.New(globalLogger, todoService)

	todosRouter := router.Group("/api/todos")
	todosRouter.GET("", v1Handler.HandleListTodos)
	todosRouter.GET("/:id", v1Handler.HandleGetTodo)
	todosRouter.POST("", v1Handler.HandleCreateTodo)
	todosRouter.PATCH("/:id", v1Handler.HandleUpdateTodo)
	todosRouter.DELETE("/:id", v1Handler.HandleDeleteTodo)
}
