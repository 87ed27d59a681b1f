package demo

type options struct {
	ShowShape bool
	ShowJSON  bool
	Separator string
}

type Option func(*options)

/* private methods */
func newOptions() *options {
	return &options{Separator: "======================="}
}

// WithShape renders every list's cell chain after its steps
func WithShape() Option {
	return func(opt *options) {
		opt.ShowShape = true
	}
}

// WithJSON prints every list's final state as JSON
func WithJSON() Option {
	return func(opt *options) {
		opt.ShowJSON = true
	}
}

// WithSeparator overrides the line printed between lists
func WithSeparator(sep string) Option {
	return func(opt *options) {
		opt.Separator = sep
	}
}
