// pkg/platform/resolver.go
package platform

import (
	"fmt"

	"github.com/arc-language/glesbind/pkg/env"
)

// Resolver computes the header, include path and libraries for one target
type Resolver interface {
	Resolve() (*env.Resolution, error)
}

// Dispatcher routes a target to exactly one platform resolver
type Dispatcher struct {
	IOS     Resolver
	Android Resolver
}

// Resolve picks the resolver for goos and runs it.
// Unsupported targets fail before any resolver runs.
func (d *Dispatcher) Resolve(goos string) (*env.Resolution, error) {
	target, err := ParseTarget(goos)
	if err != nil {
		return nil, err
	}

	var r Resolver
	switch target {
	case TargetIOS:
		r = d.IOS
	case TargetAndroid:
		r = d.Android
	}
	if r == nil {
		return nil, fmt.Errorf("no resolver registered for %s", target)
	}

	res, err := r.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", target, err)
	}
	return res, nil
}
