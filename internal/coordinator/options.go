package coordinator

type callOptions struct {
	autoEnrol bool
	safe      bool
}

// CallOption tunes a single identify or authenticate call.
type CallOption func(*callOptions)

// WithAutoEnrol enables or disables cross-registry auto-enrolment (default on).
func WithAutoEnrol(enabled bool) CallOption {
	return func(o *callOptions) {
		o.autoEnrol = enabled
	}
}

// WithSafe selects safe identification (default on): only a member covering
// every known identifier is queried. Unsafe identification takes the first
// member with any match. Ignored by AuthenticateFace.
func WithSafe(enabled bool) CallOption {
	return func(o *callOptions) {
		o.safe = enabled
	}
}

func applyCallOptions(opts []CallOption) callOptions {
	o := callOptions{autoEnrol: true, safe: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
