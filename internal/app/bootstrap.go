package app

import (
	"fmt"
	"log"
	"strings"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware(container.Logger)
	f.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(container.Logger)
	f.Use(accessMw.Middleware())

	f.Get("/uploads/*", static.New(cfg.Upload.Dir))

	container.Routes.Register(f)

	go container.Hub.Run()

	return &App{Fiber: f, Container: container}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
