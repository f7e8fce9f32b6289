// Package diffusion 显式有限差分求解双组分一维扩散
package diffusion

import (
	"fmt"
	"math"

	"voltammetry/grid"
	"voltammetry/params"
	"voltammetry/record"
)

// Observer 每步边界更新后回调，f 在回调返回后继续被修改
type Observer func(k int, f *Field)

// Stepper 扩散步进器
// 独占浓度场，单线程顺序推进 k = 0 … M-1。
type Stepper struct {
	n     int     // 电子数
	nf    float64 // n·F/(R·T)
	e0    float64 // 形式电位
	f     float64 // 法拉第常数
	d     float64 // 扩散系数
	cBulk float64 // 本体浓度
	dx    float64 // 空间步长
	alpha float64 // 稳定比

	waveform []float64
	field    *Field
}

// NewStepper 创建步进器并初始化浓度场
func NewStepper(p params.Params, g *grid.Grid) *Stepper {
	return &Stepper{
		n:        p.N,
		nf:       float64(p.N) * p.Sigma(),
		e0:       p.E0,
		f:        p.F,
		d:        p.D,
		cBulk:    p.CBulk,
		dx:       g.Dx,
		alpha:    g.Alpha,
		waveform: g.Waveform,
		field:    NewField(g.L, p.CBulk, p.CRedInit),
	}
}

// Field 浓度场
func (s *Stepper) Field() *Field { return s.field }

// Boundary Nernst 平衡边界
// Λ = exp(nσ(E−E0))，CR[0] = C/(1+Λ)，CO[0] = C − CR[0]。
func (s *Stepper) Boundary(e float64) {
	lambda := math.Exp(s.nf * (e - s.e0))
	ox, red := s.field.Oxidized(), s.field.Reduced()
	red[0] = s.cBulk / (1 + lambda)
	ox[0] = s.cBulk - red[0]
}

// SurfaceCurrent 当前行的电极电流
func (s *Stepper) SurfaceCurrent() float64 {
	ox := s.field.Oxidized()
	return Current(s.n, s.f, s.d, s.dx, ox[0], ox[1])
}

// diffuse 内部节点 1 … L-2 前向时间中心空间更新
// 读当前行、写下一行，两行互不重叠；节点 0 与 L-1 不写。
func (s *Stepper) diffuse() {
	ox, red := s.field.Oxidized(), s.field.Reduced()
	nextOx, nextRed := s.field.next()
	ftcs(nextOx, ox, s.alpha)
	ftcs(nextRed, red, s.alpha)
	s.field.advance()
}

func ftcs(dst, src []float64, alpha float64) {
	for x := 1; x < len(src)-1; x++ {
		dst[x] = src[x] + alpha*(src[x+1]-2*src[x]+src[x-1])
	}
}

// Run 推进全部时间步并写入记录
// 最后一步只做边界更新与电流计算。
func (s *Stepper) Run(rec *record.Record, observe Observer) error {
	m := len(s.waveform)
	if len(rec.Current) != m {
		return fmt.Errorf("记录长度 %d 与时间步数 %d 不一致", len(rec.Current), m)
	}
	if s.field.Step() != 0 {
		return fmt.Errorf("浓度场已推进到第 %d 步", s.field.Step())
	}
	for k := 0; k < m; k++ {
		s.Boundary(s.waveform[k])
		if observe != nil {
			observe(k, s.field)
		}
		rec.Update(k, s.SurfaceCurrent())
		rec.Snapshot(k, s.field.Oxidized(), s.field.Reduced())
		if k < m-1 {
			s.diffuse()
		}
	}
	return nil
}
