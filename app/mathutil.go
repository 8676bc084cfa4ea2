package app

import "math"

func sin32(v float32) float32  { return float32(math.Sin(float64(v))) }
func cos32(v float32) float32  { return float32(math.Cos(float64(v))) }
func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }

func fract32(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}
