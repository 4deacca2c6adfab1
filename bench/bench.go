package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/zeebo/errs/v2"

	"github.com/histdb/hashbench"
	"github.com/histdb/hashbench/corpus"
)

// Report is the result of timing one hash function.
type Report struct {
	Name    string
	Elapsed time.Duration
	Records int64
	Bytes   int64
}

func (r Report) String() string {
	return fmt.Sprintf("%.3f sec :: %s", r.Elapsed.Seconds(), r.Name)
}

// Runner times hash functions over a shared corpus. The corpus is built by
// the caller so its cost is never inside a timing window.
type Runner struct {
	corpus corpus.T
	rounds int
	out    io.Writer
	log    zerolog.Logger
}

func NewRunner(c corpus.T, rounds int, out io.Writer, log zerolog.Logger) *Runner {
	return &Runner{
		corpus: c,
		rounds: rounds,
		out:    out,
		log:    log,
	}
}

func (r *Runner) Rounds() int { return r.rounds }

// Run hashes every record of the corpus once per round, writes a report line
// and returns the report. Every result is stored to a heap sink so the calls
// cannot be discarded.
func Run[T hashbench.Digest](r *Runner, name string, fn hashbench.Func[T]) (Report, error) {
	sink := new(T)

	start := time.Now()
	for range r.rounds {
		for _, rec := range r.corpus {
			*sink = fn(rec)
		}
	}
	elapsed := time.Since(start)

	observe(sink)

	rep := Report{
		Name:    name,
		Elapsed: elapsed,
		Records: int64(r.rounds) * int64(r.corpus.Len()),
		Bytes:   int64(r.rounds) * r.corpus.Bytes(),
	}

	if _, err := fmt.Fprintln(r.out, rep.String()); err != nil {
		return rep, errs.Wrap(err)
	}

	r.log.Debug().
		Str("name", name).
		Dur("elapsed", elapsed).
		Int64("records", rep.Records).
		Float64("ns/record", rep.NanosPerRecord()).
		Float64("MB/s", rep.MegabytesPerSecond()).
		Interface("last", *sink).
		Msg("benchmark finished")

	return rep, nil
}

func (r Report) NanosPerRecord() float64 {
	if r.Records == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Records)
}

func (r Report) MegabytesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / 1e6 / r.Elapsed.Seconds()
}

var observed any

//go:noinline
func observe[T any](p *T) { observed = p }
