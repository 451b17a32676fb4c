package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jobboard/internal/fakeapi"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

func main() {
	cfg, err := fakeapi.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, "json")
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := fakeapi.NewApp(cfg, logger).Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
