package random

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Eager sampling kernels, one per distribution, built on gonum's distuv over
// a golang.org/x/exp/rand source.
//
// They serve two callers: the dtype inferencer, which invokes them at size
// zero so the real numeric machinery decides the element type without
// producing data; and the execution layer, which samples each chunk with a
// source derived via StateRef.DeriveChunk.

// SampleKernel draws n eager samples from the distribution with the given
// scalar parameters (in the order reported by dist's parameter schema) and
// returns a typed slice: []float64 for continuous families, []int64 for
// discrete ones. n == 0 is valid and draws nothing.
func SampleKernel(dist Distribution, src rand.Source, params []float64, n int) any {
	return distSpecs[dist].sample(src, params, n)
}

func fill(n int, rand func() float64) []float64 {
	out := make([]float64, n)
	for ii := range out {
		out[ii] = rand()
	}
	return out
}

func fillInt(n int, rand func() float64) []int64 {
	out := make([]int64, n)
	for ii := range out {
		out[ii] = int64(rand())
	}
	return out
}

func sampleUniform(src rand.Source, params []float64, n int) any {
	d := distuv.Uniform{Min: params[0], Max: params[1], Src: src}
	return fill(n, d.Rand)
}

func sampleWeibull(src rand.Source, params []float64, n int) any {
	d := distuv.Weibull{K: params[0], Lambda: 1, Src: src}
	return fill(n, d.Rand)
}

func sampleNormal(src rand.Source, params []float64, n int) any {
	d := distuv.Normal{Mu: params[0], Sigma: params[1], Src: src}
	return fill(n, d.Rand)
}

func sampleLogNormal(src rand.Source, params []float64, n int) any {
	d := distuv.LogNormal{Mu: params[0], Sigma: params[1], Src: src}
	return fill(n, d.Rand)
}

func sampleExponential(src rand.Source, params []float64, n int) any {
	d := distuv.Exponential{Rate: 1 / params[0], Src: src}
	return fill(n, d.Rand)
}

func sampleGamma(src rand.Source, params []float64, n int) any {
	// distuv parameterizes by rate; the public surface uses scale.
	d := distuv.Gamma{Alpha: params[0], Beta: 1 / params[1], Src: src}
	return fill(n, d.Rand)
}

func sampleBeta(src rand.Source, params []float64, n int) any {
	d := distuv.Beta{Alpha: params[0], Beta: params[1], Src: src}
	return fill(n, d.Rand)
}

func sampleChiSquare(src rand.Source, params []float64, n int) any {
	d := distuv.ChiSquared{K: params[0], Src: src}
	return fill(n, d.Rand)
}

func samplePareto(src rand.Source, params []float64, n int) any {
	d := distuv.Pareto{Xm: 1, Alpha: params[0], Src: src}
	return fill(n, d.Rand)
}

func sampleRandomSample(src rand.Source, _ []float64, n int) any {
	rng := rand.New(src)
	return fill(n, rng.Float64)
}

func samplePoisson(src rand.Source, params []float64, n int) any {
	d := distuv.Poisson{Lambda: params[0], Src: src}
	return fillInt(n, d.Rand)
}

func sampleBinomial(src rand.Source, params []float64, n int) any {
	d := distuv.Binomial{N: params[0], P: params[1], Src: src}
	return fillInt(n, d.Rand)
}

func sampleRandInt(src rand.Source, params []float64, n int) any {
	rng := rand.New(src)
	low, high := int64(params[0]), int64(params[1])
	return fillInt(n, func() float64 {
		return float64(low + rng.Int63n(high-low))
	})
}
