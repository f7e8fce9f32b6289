package record

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// View 结果视图
// 返回的切片直接引用记录数据，调用方不得修改。
type View struct {
	rec *Record
}

// Potential 完整电位序列 (V)
func (v *View) Potential() []float64 { return v.rec.Potential }

// Current 完整电流序列 (A)
func (v *View) Current() []float64 { return v.rec.Current }

// Time 时间轴 (s)
func (v *View) Time() []float64 { return v.rec.Time }

// Profiles 浓度剖面快照
func (v *View) Profiles() []Profile { return v.rec.Profiles }

// StepsPerCycle 单循环步数，也是最后循环切片的边界
func (v *View) StepsPerCycle() int { return v.rec.StepsPerCycle }

// Cycles 循环次数
func (v *View) Cycles() int { return v.rec.Cycles }

// Len 总步数 M
func (v *View) Len() int { return len(v.rec.Potential) }

func (v *View) slice(start, end int) (e, i []float64) {
	if start < 0 || end > len(v.rec.Potential) || start >= end {
		return nil, nil
	}
	return v.rec.Potential[start:end], v.rec.Current[start:end]
}

// Cycle 第 c 个循环（从 0 开始）
func (v *View) Cycle(c int) (e, i []float64) {
	spc := v.rec.StepsPerCycle
	return v.slice(c*spc, (c+1)*spc)
}

// LastCycle 最后一个循环 [(n-1)·spc : n·spc]
func (v *View) LastCycle() (e, i []float64) {
	return v.Cycle(v.rec.Cycles - 1)
}

// EarlierCycles 最后循环之前的全部循环 [0 : (n-1)·spc]
func (v *View) EarlierCycles() (e, i []float64) {
	return v.slice(0, (v.rec.Cycles-1)*v.rec.StepsPerCycle)
}

// PeriodicResidual 最后两个循环电流的最大逐点差
// 循环数不足 2 时返回 0。
func (v *View) PeriodicResidual() float64 {
	if v.rec.Cycles < 2 {
		return 0
	}
	_, last := v.Cycle(v.rec.Cycles - 1)
	_, prev := v.Cycle(v.rec.Cycles - 2)
	return floats.Distance(last, prev, math.Inf(1))
}

// Finite 电流序列不含 NaN 或 Inf
func (v *View) Finite() bool {
	for _, i := range v.rec.Current {
		if math.IsNaN(i) || math.IsInf(i, 0) {
			return false
		}
	}
	return true
}
