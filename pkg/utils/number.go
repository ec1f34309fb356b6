package utils

// Millions converte um valor monetário para milhões
func Millions(f float64) float64 {
	return f / 1e6
}
