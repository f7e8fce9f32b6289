package grid

import (
	"fmt"
	"math"

	"voltammetry/params"
	"voltammetry/waveform"

	"gonum.org/v1/gonum/floats"
)

// alphaTolerance 稳定比比较的相对容差（dt 反算 alpha 时的舍入误差）
const alphaTolerance = 1e-12

// Grid 空间/时间离散化
// 依次计算 dx → dt → alpha → stepsPerCycle → M，创建后不再修改。
type Grid struct {
	Dx            float64   // 空间步长
	Dt            float64   // 时间步长
	Alpha         float64   // 实际稳定比 D·dt/dx²
	L             int       // 空间节点数
	StepsPerCycle int       // 单循环时间步数
	Cycles        int       // 循环次数
	M             int       // 总时间步数（等于电位序列长度）
	Waveform      []float64 // 电位序列
}

// CycleTime 单循环扫描时间 (|Eλ−Ei| + |Ef−Eλ|)/v
func CycleTime(p params.Params) float64 {
	return (math.Abs(p.ELambda-p.Ei) + math.Abs(p.Ef-p.ELambda)) / p.ScanRate
}

// New 根据参数计算离散化
func New(p params.Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Grid{L: p.L, Cycles: p.Cycles}
	g.Dx = p.XMax / float64(p.L)
	if p.TimeStep > 0 {
		g.Dt = p.TimeStep
	} else {
		g.Dt = p.AlphaTarget * g.Dx * g.Dx / p.D
	}
	g.Alpha = p.D * g.Dt / (g.Dx * g.Dx)
	if g.Alpha > params.MaxAlpha*(1+alphaTolerance) {
		return nil, fmt.Errorf("%w: alpha=%g (dt=%g, dx=%g)", params.ErrUnstable, g.Alpha, g.Dt, g.Dx)
	}
	steps := math.Floor(CycleTime(p) / g.Dt)
	if steps < 2 || steps > math.MaxInt32 {
		return nil, fmt.Errorf("%w: 单循环步数 %g 无效（需 ≥ 2）", params.ErrConfig, steps)
	}
	g.StepsPerCycle = int(steps)
	g.M = g.StepsPerCycle * g.Cycles
	g.Waveform = waveform.Generate(p.Ei, p.ELambda, p.Ef, g.StepsPerCycle, g.Cycles)
	// 以实际序列长度为准
	g.M = len(g.Waveform)
	if g.M < 2 {
		return nil, fmt.Errorf("%w: 总步数 %d 小于 2", params.ErrConfig, g.M)
	}
	return g, nil
}

// Times 时间轴 [0, M·dt] 等分 M 点
func (g *Grid) Times() []float64 {
	t := make([]float64, g.M)
	floats.Span(t, 0, float64(g.M)*g.Dt)
	return t
}

// CycleRange 第 c 个循环在序列中的区间 [start, end)
func (g *Grid) CycleRange(c int) (start, end int) {
	return c * g.StepsPerCycle, (c + 1) * g.StepsPerCycle
}

func (g *Grid) String() string {
	return fmt.Sprintf("dx=%g dt=%g alpha=%g L=%d steps/cycle=%d cycles=%d M=%d",
		g.Dx, g.Dt, g.Alpha, g.L, g.StepsPerCycle, g.Cycles, g.M)
}
