// Package waveform 生成循环伏安三角波电位序列
package waveform

import "gonum.org/v1/gonum/floats"

// span 在 dst 中填充 [start, end] 等间距点
// 长度为 1 时只保留起点，与 linspace 行为一致。
func span(dst []float64, start, end float64) {
	switch len(dst) {
	case 0:
	case 1:
		dst[0] = start
	default:
		floats.Span(dst, start, end)
		dst[len(dst)-1] = end
	}
}

// Cycle 生成单个循环的电位序列
// 正扫 stepsPerCycle/2 点 ei → elambda，回扫剩余点 elambda → ef，两段均含端点。
func Cycle(ei, elambda, ef float64, stepsPerCycle int) []float64 {
	if stepsPerCycle <= 0 {
		return nil
	}
	forward := stepsPerCycle / 2
	e := make([]float64, stepsPerCycle)
	span(e[:forward], ei, elambda)
	span(e[forward:], elambda, ef)
	return e
}

// Generate 重复 cycles 个循环，序列长度为 stepsPerCycle·cycles
// 每个循环都从 ei 重新开始。
func Generate(ei, elambda, ef float64, stepsPerCycle, cycles int) []float64 {
	cycle := Cycle(ei, elambda, ef, stepsPerCycle)
	if cycles <= 0 {
		return nil
	}
	e := make([]float64, 0, len(cycle)*cycles)
	for c := 0; c < cycles; c++ {
		e = append(e, cycle...)
	}
	return e
}
