package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/moosethebrown/mission-net-bridge/config"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "/etc/mission-net-bridge.conf", "path to configuration file")
	flag.Parse()

	cfg, err := config.NewConfig(configFile)
	if err != nil {
		fmt.Printf("Error reading config: %s\n", err)
		os.Exit(1)
	}

	app := NewApp(cfg)

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)

	app.Start()

	<-sigch
	app.Stop()
}
