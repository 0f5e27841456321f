package timebomb

import (
	"context"
	"time"
)

type options struct {
	ctx           context.Context
	sink          Sink
	leadTime      time.Duration
	clock         Clock
	sleep         func(time.Duration)
	observers     []Observer
	disableInProd bool
	isProduction  func() bool
}

// Option customises a single guard call or a Guard.
type Option func(*options)

func defaultOptions() options {
	return options{
		ctx:          context.Background(),
		sink:         LogSink(nil),
		leadTime:     DefaultLeadTime,
		clock:        SystemClock{},
		sleep:        time.Sleep,
		isProduction: IsProduction,
	}
}

func buildOptions(base []Option, overrides []Option) options {
	o := defaultOptions()
	for _, opt := range base {
		opt(&o)
	}
	for _, opt := range overrides {
		opt(&o)
	}
	return o
}

// WithSink replaces the warning sink. A nil sink is passed through as is.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithLeadTime sets how long before the deadline warnings begin.
func WithLeadTime(d time.Duration) Option {
	return func(o *options) {
		o.leadTime = d
	}
}

func WithLeadTimeDays(days int) Option {
	return WithLeadTime(time.Duration(days) * 24 * time.Hour)
}

func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithSleeper replaces the blocking wait used by SlowAfter. The function
// must block the calling goroutine for the given duration.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// WithObserver adds an observer. Observers run in the order they were added.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, obs)
	}
}

// WithContext sets the context handed to observers. It does not cancel the
// SlowAfter delay.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithDisableInProd turns every entry point into a no-op in production.
func WithDisableInProd() Option {
	return func(o *options) {
		o.disableInProd = true
	}
}

// WithProdDetector replaces IsProduction for WithDisableInProd.
func WithProdDetector(detect func() bool) Option {
	return func(o *options) {
		o.isProduction = detect
	}
}

func (o *options) disabled() bool {
	return o.disableInProd && o.isProduction != nil && o.isProduction()
}

func (o *options) observe(e Evaluation) {
	for _, obs := range o.observers {
		obs.ObserveEvaluation(o.ctx, e)
	}
}
