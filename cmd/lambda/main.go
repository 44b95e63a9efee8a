package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/rodrigoqf/quizforge/internal/config"
	"github.com/rodrigoqf/quizforge/internal/container"
	"github.com/rodrigoqf/quizforge/internal/router"
)

func main() {
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

	adapter := httpadapter.NewV2(handler)
	lambda.Start(adapter.ProxyWithContext)
}
