package main

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/LHerskind/grumpkin-schnorr/fixture"
	"github.com/LHerskind/grumpkin-schnorr/grumpkin"
	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

const testPrivKey = "0x0b8e16d1f3a86e5d4a2b0f9c7e6d5c4b3a29180706f5e4d3c2b1a09f8e7d6c5b"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, defaultOutFile, cfg.OutFile)
	require.Equal(t, 1, cfg.Count)
	require.Equal(t, btclog.LevelInfo, cfg.level)
	require.Equal(t, fixture.ReferenceMessage, cfg.message)
	require.Nil(t, cfg.privKey)
	require.Nil(t, cfg.seed)
}

func TestLoadConfigOptions(t *testing.T) {
	cfg, err := loadConfig([]string{
		"--out", "vectors.json",
		"--privkey", testPrivKey,
		"--message", "deadbeef",
		"--count", "3",
		"--seed", "01",
		"--loglevel", "debug",
	})
	require.NoError(t, err)
	require.Equal(t, "vectors.json", cfg.OutFile)
	require.NotNil(t, cfg.privKey)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, cfg.message)
	require.Equal(t, 3, cfg.Count)
	require.Equal(t, []byte{0x01}, cfg.seed)
	require.Equal(t, btclog.LevelDebug, cfg.level)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := [][]string{
		{"--count", "0"},
		{"--loglevel", "loud"},
		{"--privkey", "zz"},
		{"--privkey", "00"},
		{"--privkey", "0x" + "00000000000000000000000000000000" +
			"00000000000000000000000000000000"},
		{"--message", "abc"},
		{"--out", ""},
		{"--unknown"},
	}
	for _, args := range tests {
		_, err := loadConfig(args)
		require.Error(t, err, "%v", args)
	}
}

func TestBuildRecords(t *testing.T) {
	cfg, err := loadConfig([]string{"--count", "4"})
	require.NoError(t, err)

	records, err := buildRecords(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, records, 4)
	for _, rec := range records {
		require.True(t, rec.Verify())
	}
}

func TestBuildRecordsSeeded(t *testing.T) {
	args := []string{"--count", "2", "--seed", "0x5eed"}

	cfg, err := loadConfig(args)
	require.NoError(t, err)
	first, err := buildRecords(context.Background(), cfg)
	require.NoError(t, err)

	cfg, err = loadConfig(args)
	require.NoError(t, err)
	second, err := buildRecords(context.Background(), cfg)
	require.NoError(t, err)

	a, err := encodeRecords(first)
	require.NoError(t, err)
	b, err := encodeRecords(second)
	require.NoError(t, err)
	require.Equal(t, string(a), string(b))
	require.False(t, first[0].PublicKey.IsEqual(first[1].PublicKey))
}

func TestRealMain(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schnorr_input.json")
	require.NoError(t, realMain([]string{"--out", out, "--privkey", testPrivKey,
		"--loglevel", "off"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc fixture.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotNil(t, doc.SchnorrSignature)
	require.True(t, doc.SchnorrSignature.Verify())
	require.Equal(t, fixture.ReferenceMessage, doc.SchnorrSignature.Message)
	require.Equal(t,
		"(0x1362ce9c98d56f2cddf6a8cc036918a68162c737c802d25aa28a553a75270563,"+
			"0x081d9c52b6ca55c32c8d8ce703b360340dcd8afabeb0d1b9586cd9cfac2a8f2e)",
		doc.SchnorrSignature.PublicKey.String())

	out = filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, realMain([]string{"--out", out, "--count", "2",
		"--loglevel", "off"}))
	data, err = os.ReadFile(out)
	require.NoError(t, err)

	var docs []fixture.Document
	require.NoError(t, json.Unmarshal(data, &docs))
	require.Len(t, docs, 2)
	for _, doc := range docs {
		require.True(t, doc.SchnorrSignature.Verify())
	}
}

// signingNonce recovers k = s + e*x mod n from a record signed under sk.
func signingNonce(t *testing.T, cfg *config, rec *fixture.Record) *big.Int {
	t.Helper()
	x := new(big.Int).SetBytes(cfg.privKey.Serialize())
	sig := rec.Signature
	k := new(big.Int).Mul(&sig.E().V, x)
	k.Add(k, &sig.S().V)
	return k.Mod(k, grumpkin.Order())
}

func TestSeededNonceBindsMessage(t *testing.T) {
	build := func(msg string) (*config, *fixture.Record) {
		cfg, err := loadConfig([]string{"--privkey", testPrivKey,
			"--seed", "0x5eed", "--message", msg})
		require.NoError(t, err)
		records, err := buildRecords(context.Background(), cfg)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.True(t, records[0].Verify())
		return cfg, records[0]
	}

	cfgA, recA := build("aa")
	cfgB, recB := build("bb")
	require.NotEqual(t, 0, signingNonce(t, cfgA, recA).Cmp(
		signingNonce(t, cfgB, recB)))

	// The same inputs reproduce the same signature.
	_, again := build("aa")
	require.True(t, again.Signature.IsEqual(recA.Signature))

	// Vectors of one run never share a nonce either.
	cfg, err := loadConfig([]string{"--privkey", testPrivKey,
		"--seed", "0x5eed", "--count", "2"})
	require.NoError(t, err)
	records, err := buildRecords(context.Background(), cfg)
	require.NoError(t, err)
	require.NotEqual(t, 0, signingNonce(t, cfg, records[0]).Cmp(
		signingNonce(t, cfg, records[1])))
}

func TestSeededKeysBindMessage(t *testing.T) {
	build := func(msg string) *fixture.Record {
		cfg, err := loadConfig([]string{"--seed", "0x5eed", "--message", msg})
		require.NoError(t, err)
		records, err := buildRecords(context.Background(), cfg)
		require.NoError(t, err)
		return records[0]
	}

	require.False(t, build("aa").PublicKey.IsEqual(build("bb").PublicKey))
}
