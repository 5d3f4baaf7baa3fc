package main

import (
	"context"
	"log"
	"os"

	"hospital-manager-api/internal/consultingapp"
)

func main() {
	ctx := context.Background()

	app, err := consultingapp.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("consultingservice stopped with error: %v", err)
		os.Exit(1)
	}
}
