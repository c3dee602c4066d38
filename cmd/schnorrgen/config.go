package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/LHerskind/grumpkin-schnorr/fixture"
	"github.com/LHerskind/grumpkin-schnorr/schnorr"
	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultOutFile  = "schnorr_input.json"
	defaultCount    = 1
	defaultLogLevel = "info"
)

// config defines the configuration options for schnorrgen.
//
// See loadConfig for details on the configuration load process.
type config struct {
	OutFile  string `short:"o" long:"out" description:"File to write the circuit input to"`
	PrivKey  string `short:"k" long:"privkey" description:"Hex encoded 32 byte private key to sign with -- a fresh key is drawn for every vector when unset"`
	Message  string `short:"m" long:"message" description:"Hex encoded message to sign -- defaults to the reference message"`
	Count    int    `short:"n" long:"count" description:"Number of vectors to generate -- more than one writes an array"`
	Seed     string `long:"seed" description:"Hex encoded seed for a reproducible randomness stream -- uses the system source when unset"`
	LogLevel string `short:"l" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	privKey *schnorr.PrivateKey
	message []byte
	seed    []byte
	level   btclog.Level
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", name, err)
	}
	return b, nil
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options
//  3. Validate and decode the hex encoded options
func loadConfig(args []string) (*config, error) {
	cfg := config{
		OutFile:  defaultOutFile,
		Count:    defaultCount,
		LogLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if cfg.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", cfg.Count)
	}
	if cfg.OutFile == "" {
		return nil, fmt.Errorf("no output file specified")
	}

	level, ok := btclog.LevelFromString(cfg.LogLevel)
	if !ok {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	cfg.level = level

	if cfg.PrivKey != "" {
		b, err := decodeHex("private key", cfg.PrivKey)
		if err != nil {
			return nil, err
		}
		cfg.privKey, err = schnorr.PrivKeyFromBytes(b)
		if err != nil {
			return nil, err
		}
	}

	cfg.message = fixture.ReferenceMessage
	if cfg.Message != "" {
		b, err := decodeHex("message", cfg.Message)
		if err != nil {
			return nil, err
		}
		cfg.message = b
	}

	if cfg.Seed != "" {
		b, err := decodeHex("seed", cfg.Seed)
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("seed must not be empty")
		}
		cfg.seed = b
	}

	return &cfg, nil
}
