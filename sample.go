// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package perivoronoi

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// SampleSites places cfg.N sites in the domain rectangle by rejection
// sampling. Every accepted site keeps a distance of at least s = R*Delta to
// every other site and at least 0.05*s to each of the four domain edges.
//
// The first site is drawn uniformly over the admissible inner rectangle; each
// further candidate is drawn uniformly over the full domain and rejected if it
// violates a distance constraint. Once cfg.MaxAttempts candidates have been
// rejected the sampler fails terminally with ErrInfeasiblePacking: no partial
// site set is ever returned.
func SampleSites(cfg Config, seed int64) ([]r2.Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, d := cfg.spacing()
	if cfg.Lx <= 2*d || cfg.Ly <= 2*d {
		return nil, errors.Wrapf(ErrInfeasiblePacking,
			"boundary clearance %v leaves no admissible area in %vx%v domain; lower Delta", d, cfg.Lx, cfg.Ly)
	}

	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, 0, cfg.N)
	sites = append(sites, r2.Point{
		X: d + random.Float64()*(cfg.Lx-2*d),
		Y: d + random.Float64()*(cfg.Ly-2*d),
	})

	failures := 0
	for len(sites) < cfg.N {
		if failures >= cfg.MaxAttempts {
			return nil, errors.Wrapf(ErrInfeasiblePacking,
				"placed %d of %d sites after %d rejected candidates; raise MaxAttempts or lower Delta",
				len(sites), cfg.N, failures)
		}
		p := r2.Point{X: random.Float64() * cfg.Lx, Y: random.Float64() * cfg.Ly}
		if admissible(p, sites, s, d, cfg.Lx, cfg.Ly) {
			sites = append(sites, p)
		} else {
			failures++
		}
	}

	return sites, nil
}

func admissible(p r2.Point, sites []r2.Point, s, d, lx, ly float64) bool {
	if p.X < d || p.X > lx-d || p.Y < d || p.Y > ly-d {
		return false
	}
	for _, q := range sites {
		if q.Sub(p).Norm() < s {
			return false
		}
	}
	return true
}
