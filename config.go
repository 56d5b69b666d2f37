// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

const (
	defaultEps              = 1e-12
	defaultCollapseFraction = 0.05

	// Boundary clearance as a fraction of the minimum site spacing.
	clearanceFraction = 0.05
)

// Sentinel errors for mesh generation.
var (
	// ErrInvalidConfig indicates a Config field outside its admissible range.
	ErrInvalidConfig = errors.New("perivoronoi: invalid configuration")
	// ErrInfeasiblePacking indicates the site sampler exhausted its attempt
	// budget before placing all sites.
	ErrInfeasiblePacking = errors.New("perivoronoi: infeasible site packing")
)

// Config describes one domain configuration for a generation run.
type Config struct {
	// Lx, Ly are the domain extents; the domain is the rectangle [0,Lx] x [0,Ly].
	Lx, Ly float64
	// N is the number of sites to place.
	N int
	// Delta scales the minimum site spacing relative to the reference length
	// R = sqrt(2*Lx*Ly / (sqrt(3)*N)). Lower values pack tighter.
	Delta float64
	// MaxAttempts bounds the number of rejected candidates the sampler
	// tolerates before giving up.
	MaxAttempts int
}

func (c Config) validate() error {
	if c.Lx <= 0 || c.Ly <= 0 {
		return fmt.Errorf("%w: domain extents must be positive, got Lx=%v Ly=%v", ErrInvalidConfig, c.Lx, c.Ly)
	}
	if c.N < 1 {
		return fmt.Errorf("%w: site count must be at least 1, got N=%d", ErrInvalidConfig, c.N)
	}
	if c.Delta <= 0 {
		return fmt.Errorf("%w: spacing ratio must be positive, got Delta=%v", ErrInvalidConfig, c.Delta)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: attempt budget must be non-negative, got MaxAttempts=%d", ErrInvalidConfig, c.MaxAttempts)
	}
	return nil
}

// box returns the domain rectangle.
func (c Config) box() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: c.Lx, Y: c.Ly})
}

// spacing returns the minimum pairwise site distance s and the minimum
// boundary clearance d derived from the reference length.
func (c Config) spacing() (s, d float64) {
	r := math.Sqrt(2 * c.Lx * c.Ly / (math.Sqrt(3) * float64(c.N)))
	s = r * c.Delta
	d = clearanceFraction * s
	return s, d
}

// Options holds tunable parameters for Generate beyond the domain Config.
type Options struct {
	Seed             int64
	Eps              float64
	CollapseFraction float64
}

// Option configures an Options value.
type Option func(*Options) error

// WithSeed sets the seed of the site sampler's random source.
func WithSeed(seed int64) Option {
	return func(o *Options) error {
		o.Seed = seed
		return nil
	}
}

// WithEps sets the epsilon passed through to the Voronoi computations.
// It must be in (0, 1).
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 || eps >= 1 {
			return errors.New("perivoronoi: eps must be in (0, 1)")
		}
		o.Eps = eps
		return nil
	}
}

// WithCollapseFraction sets the degenerate-edge threshold as a fraction of the
// domain width Lx. Edges shorter than fraction*Lx are collapsed. It must be in
// [0, 1); zero disables collapsing.
func WithCollapseFraction(fraction float64) Option {
	return func(o *Options) error {
		if fraction < 0 || fraction >= 1 {
			return errors.New("perivoronoi: collapse fraction must be in [0, 1)")
		}
		o.CollapseFraction = fraction
		return nil
	}
}

func buildOptions(setters []Option) (Options, error) {
	opts := Options{
		Seed:             0,
		Eps:              defaultEps,
		CollapseFraction: defaultCollapseFraction,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}
