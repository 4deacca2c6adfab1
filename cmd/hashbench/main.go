package main

import (
	"io"
	"os"

	"github.com/zeebo/errs/v2"

	"github.com/histdb/hashbench/bench"
	"github.com/histdb/hashbench/config"
	"github.com/histdb/hashbench/corpus"
	"github.com/histdb/hashbench/filesystem"
	"github.com/histdb/hashbench/hasher"
	"github.com/histdb/hashbench/logging"
)

// algorithms is the fixed list of benchmarked hash functions in output order.
func algorithms() []bench.Case {
	return []bench.Case{
		bench.Of("fnv", hasher.FNV64a),
		bench.Of("maphash", hasher.MapHash),
		bench.Of("xxhash", hasher.XXHash),
		bench.Of("xxh3", hasher.XXH3),
		bench.Of("xxh3_128", hasher.XXH128),
		bench.Of("seahash", hasher.SeaHash),
		bench.Of("murmur3_32", hasher.Murmur32),
		bench.Of("murmur3_128", hasher.Murmur128),
		bench.Of("highway", hasher.Highway),
		bench.Of("siphash", hasher.SipHash),
		bench.Of("crc32", hasher.CRC32),
		bench.Of("wyhash", hasher.WyHash),
		bench.Of("metrohash64", hasher.Metro64),
		bench.Of("metrohash128", hasher.Metro128),
		bench.Of("t1ha", hasher.T1ha),
		bench.Of("farmhash64", hasher.Farm64),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.L().Error().Err(err).Msg("invalid configuration")
		if usage, uerr := config.Usage(); uerr == nil {
			_, _ = io.WriteString(os.Stderr, usage+"\n")
		}
		os.Exit(1)
	}

	logging.Init(os.Stderr, cfg.Debug, cfg.HumanLogs)

	if err := run(cfg, &filesystem.T{}, os.Stdout, algorithms()); err != nil {
		logging.L().Error().Err(err).Msg("benchmark aborted")
		os.Exit(1)
	}
}

func run(cfg config.Config, fs *filesystem.T, out io.Writer, cases []bench.Case) error {
	log := logging.WithPhase("corpus")
	log.Info().
		Str("source", cfg.Source).
		Int("records", cfg.Records).
		Int("max_len", cfg.MaxLen).
		Msg("building corpus")

	c, err := corpus.Load(fs, cfg.Source, cfg.Records, cfg.MaxLen)
	if err != nil {
		return errs.Wrap(err)
	}

	log.Info().
		Int("records", c.Len()).
		Int64("bytes", c.Bytes()).
		Msg("corpus built")

	r := bench.NewRunner(c, cfg.Rounds, out, logging.WithPhase("bench"))
	_, err = bench.RunAll(r, cases)
	return err
}
