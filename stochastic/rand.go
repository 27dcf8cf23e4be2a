package stochastic

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal returns a standard normal sampler backed by src, or by a
// private time-seeded source when src is nil.
func stdNormal(src rand.Source) distuv.Normal {
	if src == nil {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
}
