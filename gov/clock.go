// Package gov
package gov

import (
	"time"
)

// Clock supplies the time used for deadline checks. The engine never
// reads an unguarded clock, replay with a manual clock stays
// deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
