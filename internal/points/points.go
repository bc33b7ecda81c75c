// Package points implements the points-to-currency conversion rule. Pure
// functions, no side effects.
package points

import "github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"

// Defaults used when no PointsConfig document has been saved yet. These match
// the values the program launched with.
const (
	DefaultPointsPerKg  = 2.0
	DefaultRatePerPoint = 500
	DefaultCurrency     = "IDR"
)

// Compute returns the points earned for a pickup of kg kilograms.
// Both the weight and the rate must be strictly positive.
func Compute(kg, pointsPerKg float64) (float64, error) {
	if kg <= 0 {
		return 0, apperrors.Validation("wasteAmountKg", "weight must be positive")
	}
	if pointsPerKg <= 0 {
		return 0, apperrors.Validation("pointsPerKg", "points per kg must be positive")
	}
	return kg * pointsPerKg, nil
}

// CashValue returns the advertised cash value of the given points.
func CashValue(pts float64, ratePerPoint int) float64 {
	return pts * float64(ratePerPoint)
}
