package params

import (
	"errors"
	"fmt"
)

// 错误定义
var (
	// ErrConfig 参数配置错误，仿真开始前返回。
	ErrConfig = errors.New("参数配置错误")
	// ErrUnstable 稳定比 alpha 超过 0.5，显式差分格式会发散。
	ErrUnstable = fmt.Errorf("%w: 稳定比 alpha 超过 0.5", ErrConfig)
)

// MaxAlpha 显式扩散格式稳定上限 D·dt/dx²
const MaxAlpha = 0.5

// Params 仿真参数集合
// 创建后按值传递，不被仿真过程修改。
type Params struct {
	// 电化学参数
	N        int     // 转移电子数
	D        float64 // 扩散系数 (cm²/s)
	CBulk    float64 // 本体浓度 (mol/cm³)
	CRedInit float64 // 还原态初始浓度

	// 实验参数
	Ei       float64 // 起始电位 (V)
	ELambda  float64 // 换向电位 (V)
	Ef       float64 // 终止电位 (V)
	ScanRate float64 // 扫描速率 (V/s)
	E0       float64 // 形式电位 (V)

	// 物理常数
	R float64 // 气体常数
	T float64 // 温度 (K)
	F float64 // 法拉第常数

	// 数值参数
	L             int     // 空间节点数
	Cycles        int     // 循环次数
	AlphaTarget   float64 // 目标稳定比
	XMax          float64 // 空间区域长度 (cm)
	TimeStep      float64 // 指定时间步长，0 表示由 AlphaTarget 推导
	ProfileStride int     // 浓度剖面快照间隔步数，0 表示不记录
}

// Default 默认参数
func Default() Params {
	return Params{
		N:        1,
		D:        1e-5,
		CBulk:    1e-7,
		CRedInit: 0,

		Ei:       0.3,
		ELambda:  -0.3,
		Ef:       0.3,
		ScanRate: 0.1,
		E0:       0,

		R: 8.314,
		T: 298.15,
		F: 96485,

		L:           1000,
		Cycles:      2,
		AlphaTarget: 0.45,
		XMax:        0.2,
	}
}

// Sigma 返回 F/(R·T)
func (p Params) Sigma() float64 { return p.F / (p.R * p.T) }

// Validate 校验参数合法性
func (p Params) Validate() error {
	switch {
	case p.N < 1:
		return fmt.Errorf("%w: 电子数 n 必须 ≥ 1, 当前 %d", ErrConfig, p.N)
	case !(p.D > 0):
		return fmt.Errorf("%w: 扩散系数 D 必须大于0, 当前 %g", ErrConfig, p.D)
	case !(p.CBulk > 0):
		return fmt.Errorf("%w: 本体浓度必须大于0, 当前 %g", ErrConfig, p.CBulk)
	case !(p.CRedInit >= 0):
		return fmt.Errorf("%w: 还原态初始浓度不能为负, 当前 %g", ErrConfig, p.CRedInit)
	case !(p.ScanRate > 0):
		return fmt.Errorf("%w: 扫描速率必须大于0, 当前 %g", ErrConfig, p.ScanRate)
	case !(p.R > 0) || !(p.T > 0) || !(p.F > 0):
		return fmt.Errorf("%w: 物理常数 R, T, F 必须大于0", ErrConfig)
	case p.L < 3:
		return fmt.Errorf("%w: 空间节点数 L 必须 ≥ 3, 当前 %d", ErrConfig, p.L)
	case p.Cycles < 1:
		return fmt.Errorf("%w: 循环次数必须 ≥ 1, 当前 %d", ErrConfig, p.Cycles)
	case !(p.AlphaTarget > 0):
		return fmt.Errorf("%w: 目标稳定比必须大于0, 当前 %g", ErrConfig, p.AlphaTarget)
	case p.AlphaTarget > MaxAlpha:
		return fmt.Errorf("%w: 目标稳定比 %g", ErrUnstable, p.AlphaTarget)
	case !(p.XMax > 0):
		return fmt.Errorf("%w: 空间区域长度必须大于0, 当前 %g", ErrConfig, p.XMax)
	case !(p.TimeStep >= 0):
		return fmt.Errorf("%w: 时间步长不能为负, 当前 %g", ErrConfig, p.TimeStep)
	case p.ProfileStride < 0:
		return fmt.Errorf("%w: 剖面间隔不能为负, 当前 %d", ErrConfig, p.ProfileStride)
	}
	return nil
}
