package system

// Random — источник случайности для систем. Реализуется utils.PRNGService.
type Random interface {
	Intn(n int) int
	Float64() float64
	Range(min, max float64) float64
}
