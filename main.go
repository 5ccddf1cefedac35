/*
Atelier renders a fixed study-room scene: textures, materials and lights
are registered once up front, then every frame replays the per-object
state snapshots in draw order.
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/atelier/engine"
	"github.com/spaghettifunk/atelier/engine/config"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		panic(err)
	}

	app := engine.New(cfg)
	if err := app.Initialize(); err != nil {
		app.Shutdown()
		panic(err)
	}
	defer app.Shutdown()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	go func() {
		<-sigCh
		app.Shutdown()
		os.Exit(0)
	}()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
