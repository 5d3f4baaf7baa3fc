package main

import (
	"context"
	"log"
	"os"

	"hospital-manager-api/internal/authapp"
)

func main() {
	ctx := context.Background()

	app, err := authapp.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("authservice stopped with error: %v", err)
		os.Exit(1)
	}
}
