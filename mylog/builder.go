package mylog

// SinkFactory builds one Sink, returning an error if construction failed
// outright (as opposed to a sink that degrades to silently discarding
// writes, like FileSink does on an open failure).
type SinkFactory func() (Sink, error)

// Builder collects a Logger's name, sink factories, and backpressure mode
// before constructing it. Create one with NewBuilder: the zero value has an
// empty name, which Build rejects.
type Builder struct {
	name  string
	mode  Mode
	sinks []SinkFactory
	cfg   Config
}

// NewBuilder starts a Builder with the given Config governing every
// AsyncWorker it produces. Name defaults to "default" and Mode to ModeSafe.
func NewBuilder(cfg Config) *Builder {
	return &Builder{name: "default", mode: ModeSafe, cfg: cfg}
}

// Name sets the logger's name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// WithMode selects the AsyncWorker backpressure policy.
func (b *Builder) WithMode(mode Mode) *Builder {
	b.mode = mode
	return b
}

// AddSink appends a sink factory to the logger's ordered sink list.
func (b *Builder) AddSink(factory SinkFactory) *Builder {
	b.sinks = append(b.sinks, factory)
	return b
}

// AddStdout is a convenience wrapper for AddSink(NewStdoutSink).
func (b *Builder) AddStdout() *Builder {
	return b.AddSink(func() (Sink, error) { return NewStdoutSink(), nil })
}

// AddFile is a convenience wrapper around NewFileSink.
func (b *Builder) AddFile(path string, policy FlushPolicy) *Builder {
	return b.AddSink(func() (Sink, error) { return NewFileSink(path, policy), nil })
}

// AddRollingFile is a convenience wrapper around NewRollingFileSink.
func (b *Builder) AddRollingFile(basename string, maxSize int64, policy FlushPolicy) *Builder {
	return b.AddSink(func() (Sink, error) { return NewRollingFileSink(basename, maxSize, policy), nil })
}

// Build asserts the name is non-empty and constructs the Logger. If no
// sinks were added, a single StdoutSink is installed so a built Logger is
// never silently mute.
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		panic("mylog: logger name must not be empty")
	}

	sinks := make([]Sink, 0, len(b.sinks))
	if len(b.sinks) == 0 {
		sinks = append(sinks, NewStdoutSink())
	} else {
		for _, factory := range b.sinks {
			s, err := factory()
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, s)
		}
	}

	return newLogger(b.name, sinks, b.mode, b.cfg), nil
}
