package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/coventure/vault/sim"
)

const version = "0.1.0"

var (
	app        = kingpin.New("vaultsim", "Scenario replay tool for the quorum custody wallet")
	run        = app.Command("run", "Replay a scenario file").Default()
	versionCmd = app.Command("version", "Show version information")
	configFile = run.Flag("config", "Path of scenario file").Required().Short('c').String()
)

func setLogLevel(logger *log.Logger) {
	logger.SetLevel(log.InfoLevel)
	if value, ok := os.LookupEnv("VAULTSIM_LOGLEVEL"); ok {
		if level, err := log.ParseLevel(value); err == nil {
			logger.SetLevel(level)
		}
	}
}

func getLogger() *log.Logger {
	logger := log.New()
	setLogLevel(logger)
	return logger
}

func main() {
	logger := getLogger()

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case run.FullCommand():
		conf, err := sim.LoadConfigFromFile(*configFile)
		if err != nil {
			logger.Fatalf("Fail to load scenario: %v", err)
		}
		runner, err := sim.NewRunner(conf, logger)
		if err != nil {
			logger.Fatalf("Fail to set up scenario: %v", err)
		}
		if err := runner.Run(); err != nil {
			logger.Fatalf("Scenario failed: %v", err)
		}
	case versionCmd.FullCommand():
		fmt.Printf("vaultsim %s\n", version)
	}
}
