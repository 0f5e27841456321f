package timebomb

import "time"

// Guard bundles default options for repeated use, e.g. a service-wide sink
// and lead time. It holds no deadline state; options passed to a method
// override the bundle for that call only.
type Guard struct {
	opts []Option
}

func NewGuard(opts ...Option) *Guard {
	return &Guard{opts: append([]Option(nil), opts...)}
}

// With returns a new Guard with extra default options appended.
func (g *Guard) With(opts ...Option) *Guard {
	merged := make([]Option, 0, len(g.opts)+len(opts))
	merged = append(merged, g.opts...)
	merged = append(merged, opts...)
	return &Guard{opts: merged}
}

func (g *Guard) WarnAfter(deadline time.Time, opts ...Option) {
	o := buildOptions(g.opts, opts)
	warnAfter(&o, deadline)
}

func (g *Guard) SlowAfter(deadline time.Time, policy DelayPolicy, opts ...Option) {
	o := buildOptions(g.opts, opts)
	slowAfter(&o, deadline, policy)
}

func (g *Guard) FailAfter(deadline time.Time, opts ...Option) error {
	o := buildOptions(g.opts, opts)
	return failAfter(&o, deadline)
}

// Classify reports the window the deadline is in under the guard's clock and
// lead time, without warning, sleeping or failing.
func (g *Guard) Classify(deadline time.Time, opts ...Option) Window {
	o := buildOptions(g.opts, opts)
	return Classify(o.clock.Now(), deadline, o.leadTime)
}
