package diffusion

// Current 法拉第电流 I = −n·F·D·(c[1]−c[0])/dx
// 电极表面氧化态浓度梯度取单侧前向差分。
func Current(n int, f, d, dx, cSurf, cNext float64) float64 {
	flux := (cNext - cSurf) / dx
	return -float64(n) * f * d * flux
}
