package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"elrs-hud/internal/style"
)

func main() {
	// Command line flags
	stylePath := flag.String("style", "", "Style YAML file (defaults when empty)")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 600, "Window height")
	touchBtns := flag.Bool("touch", false, "Enable on-screen touch buttons")
	demo := flag.Bool("demo", true, "Start with the demo sweep running")
	mode := flag.Int("mode", modeSplit, "Initial view: 0=HUD, 1=panel+HUD, 2=panel")
	flag.Parse()

	log.Println("ELRS HUD viewer")

	st := style.Default()
	if *stylePath != "" {
		var err error
		st, err = style.Load(*stylePath)
		if err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
		log.Printf("Loaded style from %s", *stylePath)
	}

	// Initialize components
	src := NewTelemetrySource()
	src.SetDemo(*demo)
	app, err := NewApp(src, st, *width, *height, *fullscreen)
	if err != nil {
		log.Fatalf("Failed to create instruments: %v", err)
	}
	app.showTouchBtns = *touchBtns
	app.mode = ((*mode % modeCount) + modeCount) % modeCount

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		app.Shutdown()
		os.Exit(0)
	}()

	// Run the application
	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
	app.Shutdown()
}
