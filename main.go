package main

import (
	"os"

	"github.com/go-i2p/go-padding/cmd"
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Debug("go-padding exited with error")
		os.Exit(1)
	}
}
