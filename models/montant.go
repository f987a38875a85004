package models

import "math"

// Les montants sont en FCFA entiers (pas de centimes).

func montantOuZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// arrondiMontant rounds to the nearest integer FCFA, half up.
func arrondiMontant(x float64) int64 {
	return int64(math.Floor(x + 0.5))
}

// arrondiLitres rounds to 2 decimal places, half up.
func arrondiLitres(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
