package database

const (
	hour Epoch = 60 * 60
	day  Epoch = 24 * hour
	week Epoch = 7 * day

	// ScoreMin and ScoreMax bound ClampScore.
	ScoreMin = 0.0
	ScoreMax = 9999.0
)

// Score weights rank by how long ago the directory was visited. Buckets are
// half-open: anything under an hour (including negative elapsed values from
// clock skew) quadruples the rank, under a day doubles it, under a week
// halves it and anything older quarters it.
func Score(rank float64, elapsed Epoch) float64 {
	switch {
	case elapsed < hour:
		return rank * 4.0
	case elapsed < day:
		return rank * 2.0
	case elapsed < week:
		return rank * 0.5
	default:
		return rank * 0.25
	}
}

// ClampScore bounds a score to [ScoreMin, ScoreMax] for display. NaN maps to
// ScoreMin.
func ClampScore(score float64) float64 {
	switch {
	case score > ScoreMax:
		return ScoreMax
	case score > ScoreMin:
		return score
	default:
		return ScoreMin
	}
}
