package generation

// Engine bundles the generators so both the remote function and the
// in-process fallback run the same code.
type Engine struct {
	Questions *Synthesizer
	Summaries *Composer
	Chat      *Responder
}

type Options struct {
	// Seed pins the random source when non-zero.
	Seed uint64

	// SimulateLatency adds the artificial delays to summaries and chat.
	SimulateLatency bool
}

func NewEngine(opts Options) *Engine {
	src := NewSource()
	if opts.Seed != 0 {
		src = NewSeededSource(opts.Seed)
	}

	return &Engine{
		Questions: NewSynthesizer(src),
		Summaries: NewComposer(opts.SimulateLatency),
		Chat:      NewResponder(opts.SimulateLatency),
	}
}
