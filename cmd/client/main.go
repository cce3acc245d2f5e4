package main

import (
	"context"
	"log"
	"os"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/buildinfo"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/cli"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/config"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
