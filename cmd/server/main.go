package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/container"
	"github.com/rodrigoqf/quizforge/internal/router"
)

func main() {
	_ = godotenv.Load()
	config.Init()

	ctn, err := container.New(context.Background())
	if err != nil {
		logrus.Fatalf("failed to build container: %v", err)
	}

	handler := router.New(router.RouterConfig{
		QuizGenHandler: ctn.QuizGenContainer.Handler,
		ExplainHandler: ctn.ExplainContainer.Handler,
		StaticDir:      ctn.Config.StaticDir,
	})

	addr := ":" + ctn.Config.Port
	logrus.WithField("provider", ctn.Config.Provider).
		WithField("model", ctn.Provider.ModelID()).
		Infof("listening on %s", addr)

	if err := http.ListenAndServe(addr, handler); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
