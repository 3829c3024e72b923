package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/studio3d/engine"
	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/studio"
)

func main() {
	configPath := flag.String("config", "", "path to the studio configuration (default $"+core.ConfigEnvVar+" or "+core.DefaultConfigPath+")")
	flag.Parse()

	cfg, err := core.LoadConfig(core.ResolveConfigPath(*configPath))
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}

	s := studio.New(cfg, flag.Args())

	e, err := engine.New(s.Game)
	if err != nil {
		core.LogFatal("%s", err)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("failed to initialize the studio: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// the loop owns the GL context, so a signal only asks it to stop
	go func() {
		<-sigCh
		e.Quit()
	}()

	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown failed: %s", err)
	}
	if runErr != nil {
		core.LogFatal("%s", runErr)
	}
}
