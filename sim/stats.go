package main

import "math"

//
// ===== descriptive stats =====
//

// meanStd returns the mean and sample standard deviation. Zero values
// give (0, 0); a single observation has standard deviation 0 by policy.
func meanStd(values []int) (mean, std float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += float64(v)
	}
	mean = sum / float64(n)
	if n == 1 {
		return mean, 0
	}
	ss := 0.0
	for _, v := range values {
		d := float64(v) - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(n-1))
}

//
// ===== significance =====
//

// binomTolerance absorbs floating-point noise when deciding which
// outcomes are "as extreme" as the observed one. Fixed: it determines
// whether boundary outcomes count toward the p-value.
const binomTolerance = 1e-12

// binomPMF returns P(X=i) for i in [0, n] via the multiplicative
// recurrence pmf[i+1] = pmf[i] * (n-i)/(i+1) * p/(1-p).
func binomPMF(n int, p float64) []float64 {
	pmf := make([]float64, n+1)
	pmf[0] = math.Pow(1-p, float64(n))
	ratio := p / (1 - p)
	for i := 0; i < n; i++ {
		pmf[i+1] = pmf[i] * float64(n-i) / float64(i+1) * ratio
	}
	return pmf
}

// binomTestTwoSided is the exact two-sided binomial test: the summed
// mass of every outcome no more likely than the observed one, capped at 1.
func binomTestTwoSided(k, n int, p float64) float64 {
	pmf := binomPMF(n, p)
	observed := pmf[k]
	total := 0.0
	for _, m := range pmf {
		if m <= observed+binomTolerance {
			total += m
		}
	}
	return math.Min(total, 1.0)
}

// WilsonCI95 for a Bernoulli win rate; used in the console summary.
func WilsonCI95(wins, total int) (low, hi float64) {
	if total <= 0 {
		return 0, 1
	}
	z := 1.96
	n := float64(total)
	p := float64(wins) / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * math.Sqrt((p*(1-p))/n+(z*z)/(4*n*n))
	return (center - half) / den, (center + half) / den
}
