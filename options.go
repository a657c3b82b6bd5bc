package dllist

// Option опция для конструктора списка.
type Option func(o *options)

// WithLogger задаёт логгер для событий списка.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type options struct {
	logger Logger
}
