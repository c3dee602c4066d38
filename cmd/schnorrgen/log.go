package main

import (
	"os"

	"github.com/LHerskind/grumpkin-schnorr/fixture"
	"github.com/LHerskind/grumpkin-schnorr/schnorr"
	"github.com/btcsuite/btclog"
)

var log = btclog.Disabled

// setupLogging creates the stdout backend and hands subsystem loggers to the
// library packages.
func setupLogging(level btclog.Level) {
	backendLogger := btclog.NewBackend(os.Stdout)

	mainLog := backendLogger.Logger("MAIN")
	fixtLog := backendLogger.Logger("FIXT")
	schnLog := backendLogger.Logger("SCHN")
	for _, l := range []btclog.Logger{mainLog, fixtLog, schnLog} {
		l.SetLevel(level)
	}

	log = mainLog
	fixture.UseLogger(fixtLog)
	schnorr.UseLogger(schnLog)
}
