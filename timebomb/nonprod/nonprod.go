// Package nonprod mirrors the timebomb entry points but never fires in
// production, so deadlines only bother developers and test environments.
package nonprod

import (
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

func WarnAfter(deadline time.Time, opts ...timebomb.Option) {
	timebomb.WarnAfter(deadline, withDisabled(opts)...)
}

func SlowAfter(deadline time.Time, policy timebomb.DelayPolicy, opts ...timebomb.Option) {
	timebomb.SlowAfter(deadline, policy, withDisabled(opts)...)
}

func FailAfter(deadline time.Time, opts ...timebomb.Option) error {
	return timebomb.FailAfter(deadline, withDisabled(opts)...)
}

func withDisabled(opts []timebomb.Option) []timebomb.Option {
	out := make([]timebomb.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, timebomb.WithDisableInProd())
}
