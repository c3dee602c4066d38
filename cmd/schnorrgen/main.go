package main

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/LHerskind/grumpkin-schnorr/fixture"
	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"github.com/LHerskind/grumpkin-schnorr/schnorr"
	flags "github.com/jessevdk/go-flags"
)

// seededStream returns the randomness for vector i of a seeded run.  The
// stream is keyed by the seed, the vector index, the signing key when one is
// fixed and the message, so a seed never yields the same nonce for two
// different messages under one key.
func seededStream(cfg *config, i int) io.Reader {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(i))

	material := make([]byte, 0, len(cfg.seed)+len(idx)+
		schnorr.PrivKeyBytesLen+len(cfg.message))
	material = append(material, cfg.seed...)
	material = append(material, idx[:]...)
	if cfg.privKey != nil {
		material = append(material, cfg.privKey.Serialize()...)
	}
	material = append(material, cfg.message...)
	return grumpkin.NewSuite().XOF(material)
}

// buildRecords produces cfg.Count vectors.  Fresh keys without a seed are
// generated concurrently; a seeded run derives one stream per vector so the
// output is reproducible.
func buildRecords(ctx context.Context, cfg *config) ([]*fixture.Record, error) {
	if cfg.privKey == nil && cfg.seed == nil {
		msgs := make([][]byte, cfg.Count)
		for i := range msgs {
			msgs[i] = cfg.message
		}
		return fixture.GenerateBatch(ctx, msgs, nil)
	}

	records := make([]*fixture.Record, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		var rand io.Reader
		if cfg.seed != nil {
			rand = seededStream(cfg, i)
		}

		var (
			rec *fixture.Record
			err error
		)
		if cfg.privKey != nil {
			rec, err = fixture.Assemble(cfg.privKey, cfg.message, rand)
		} else {
			rec, err = fixture.Generate(cfg.message, rand)
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// encodeRecords wraps every record in a document.  A single record is
// written as an object, several as an array.
func encodeRecords(records []*fixture.Record) ([]byte, error) {
	docs := make([]fixture.Document, len(records))
	for i, rec := range records {
		docs[i] = fixture.Document{SchnorrSignature: rec}
	}
	if len(docs) == 1 {
		return json.MarshalIndent(docs[0], "", "  ")
	}
	return json.MarshalIndent(docs, "", "  ")
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	setupLogging(cfg.level)
	defer os.Stdout.Sync()

	start := time.Now()
	records, err := buildRecords(context.Background(), cfg)
	if err != nil {
		log.Errorf("Failed to generate vectors: %v", err)
		return err
	}

	// Never emit a vector the circuit would reject.
	for i, rec := range records {
		if err := rec.VerifyDetailed(); err != nil {
			log.Errorf("Vector %d does not verify: %v", i, err)
			return err
		}
	}
	log.Debugf("Generated and verified %d vectors in %v", len(records),
		time.Since(start))

	data, err := encodeRecords(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutFile, append(data, '\n'), 0644); err != nil {
		log.Errorf("Failed to write %s: %v", cfg.OutFile, err)
		return err
	}

	log.Infof("Generated %s", cfg.OutFile)
	return nil
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		// Parse errors have already been printed by the parser.
		if e, ok := err.(*flags.Error); ok {
			if e.Type == flags.ErrHelp {
				return
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
