// Package main is the Lambda entry point translating one DNA sequence per invocation.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/liserjrqlxue/dna2aa/internal/config"
	"github.com/liserjrqlxue/dna2aa/internal/handler"
	"github.com/liserjrqlxue/dna2aa/internal/logging"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// stderr goes to CloudWatch
	cfg.Log.File = ""
	if err = cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logging.Setup(cfg.Log, os.Stderr)

	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// warmup events short-circuit before any parsing
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	var req handler.Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}

	return handler.Handle(ctx, req)
}
