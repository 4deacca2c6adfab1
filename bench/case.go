package bench

import "github.com/histdb/hashbench"

// Case is a named hash function with its result width erased so cases of
// different widths can share a list.
type Case struct {
	Name string
	run  func(*Runner) (Report, error)
}

func Of[T hashbench.Digest](name string, fn hashbench.Func[T]) Case {
	return Case{
		Name: name,
		run:  func(r *Runner) (Report, error) { return Run(r, name, fn) },
	}
}

func (c Case) Run(r *Runner) (Report, error) { return c.run(r) }

// RunAll runs the cases in order and stops at the first error.
func RunAll(r *Runner, cases []Case) ([]Report, error) {
	r.log.Info().
		Int("rounds", r.Rounds()).
		Int("records", r.corpus.Len()).
		Int("algorithms", len(cases)).
		Msg("running")

	reps := make([]Report, 0, len(cases))
	for _, c := range cases {
		rep, err := c.Run(r)
		if err != nil {
			return reps, err
		}
		reps = append(reps, rep)
	}
	return reps, nil
}
