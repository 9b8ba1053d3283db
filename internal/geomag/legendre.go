package geomag

import "math"

// LegendreTable holds Schmidt quasi-normalised associated Legendre functions
// and their derivatives with respect to colatitude, for 0 <= m <= n <= degree.
//
// Values omit the sqrt(2) Schmidt factor for m > 0; Synthesize applies it.
type LegendreTable struct {
	degree int
	p      [][]float64
	dp     [][]float64
}

// Degree returns the maximum degree held by the table.
func (t *LegendreTable) Degree() int { return t.degree }

// P returns P[n][m].
func (t *LegendreTable) P(n, m int) float64 { return t.p[n][m] }

// DP returns dP[n][m]/dθ.
func (t *LegendreTable) DP(n, m int) float64 { return t.dp[n][m] }

func newTriangle(degree int) [][]float64 {
	rows := make([][]float64, degree+1)
	for n := range rows {
		rows[n] = make([]float64, n+1)
	}
	return rows
}

// Legendre evaluates the functions up to maxDegree at colatitude theta
// (radians). Poles are not special-cased: every recurrence multiplies by
// sinθ rather than dividing by it, so the table stays finite at θ = 0 and π.
func Legendre(maxDegree int, theta float64) *LegendreTable {
	if maxDegree < 0 {
		maxDegree = 0
	}

	p := newTriangle(maxDegree)
	dp := newTriangle(maxDegree)
	sinT, cosT := math.Sincos(theta)

	p[0][0] = 1
	dp[0][0] = 0

	for n := 1; n <= maxDegree; n++ {
		fn := float64(n)

		// Diagonal.
		k := math.Sqrt((2*fn - 1) / (2 * fn))
		p[n][n] = p[n-1][n-1] * sinT * k
		dp[n][n] = k * (sinT*dp[n-1][n-1] + cosT*p[n-1][n-1])

		// Sub-diagonal.
		q := math.Sqrt(2*fn - 1)
		p[n][n-1] = q * cosT * p[n-1][n-1]
		dp[n][n-1] = q * (cosT*dp[n-1][n-1] - sinT*p[n-1][n-1])

		for m := 0; m <= n-2; m++ {
			fm := float64(m)
			den := math.Sqrt(fn*fn - fm*fm)
			a := (2*fn - 1) / den
			b := math.Sqrt((fn-1)*(fn-1)-fm*fm) / den

			p[n][m] = a*cosT*p[n-1][m] - b*p[n-2][m]
			dp[n][m] = a*(cosT*dp[n-1][m]-sinT*p[n-1][m]) - b*dp[n-2][m]
		}
	}

	return &LegendreTable{degree: maxDegree, p: p, dp: dp}
}
