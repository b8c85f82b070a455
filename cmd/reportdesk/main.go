package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/reportdesk/internal/config"
	"github.com/dmitrijs2005/reportdesk/internal/tui"
)

func main() {

	cfg := config.LoadConfig()
	app, err := tui.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(context.Background()); err != nil {
		log.Printf("%v", err)
	}
}
