package record

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Peak 峰位置
type Peak struct {
	Index     int     // 在循环内的下标
	Potential float64 // 峰电位 (V)
	Current   float64 // 峰电流 (A)
}

// Peaks 单循环的阴极峰与阳极峰
type Peaks struct {
	Cathodic Peak // 电流最小值
	Anodic   Peak // 电流最大值
}

// Separation 峰电位差 ΔEp = Epa − Epc
func (p Peaks) Separation() float64 { return p.Anodic.Potential - p.Cathodic.Potential }

// HalfWave 半波电位 (Epa + Epc)/2
func (p Peaks) HalfWave() float64 { return (p.Anodic.Potential + p.Cathodic.Potential) / 2 }

func (p Peaks) String() string {
	return fmt.Sprintf("Epc=%.4fV Ipc=%.4gA Epa=%.4fV Ipa=%.4gA ΔEp=%.1fmV E1/2=%.4fV",
		p.Cathodic.Potential, p.Cathodic.Current,
		p.Anodic.Potential, p.Anodic.Current,
		p.Separation()*1000, p.HalfWave())
}

// Peaks 查找第 c 个循环的峰，循环不存在时返回 false
func (v *View) Peaks(c int) (Peaks, bool) {
	e, i := v.Cycle(c)
	if len(i) == 0 {
		return Peaks{}, false
	}
	lo, hi := floats.MinIdx(i), floats.MaxIdx(i)
	return Peaks{
		Cathodic: Peak{Index: lo, Potential: e[lo], Current: i[lo]},
		Anodic:   Peak{Index: hi, Potential: e[hi], Current: i[hi]},
	}, true
}
