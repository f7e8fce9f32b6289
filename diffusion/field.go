package diffusion

import "gonum.org/v1/gonum/mat"

// Field 双组分浓度场
// 只保留当前行 k 与下一行 k+1，步进后交换。两行的远端节点 L-1
// 始终保持初始本体浓度（半无限扩散边界）。
type Field struct {
	ox   [2]*mat.VecDense // 氧化态浓度 当前行/下一行
	red  [2]*mat.VecDense // 还原态浓度 当前行/下一行
	cur  int              // 当前行下标
	step int              // 当前时间步 k
}

// NewField 创建浓度场，两行均初始化为本体浓度
func NewField(l int, cBulk, cRedInit float64) *Field {
	f := &Field{}
	for i := 0; i < 2; i++ {
		f.ox[i] = mat.NewVecDense(l, nil)
		f.red[i] = mat.NewVecDense(l, nil)
		for x := 0; x < l; x++ {
			f.ox[i].SetVec(x, cBulk)
			f.red[i].SetVec(x, cRedInit)
		}
	}
	return f
}

// Len 空间节点数
func (f *Field) Len() int { return f.ox[0].Len() }

// Step 当前时间步
func (f *Field) Step() int { return f.step }

// Oxidized 当前行氧化态浓度
func (f *Field) Oxidized() []float64 { return f.ox[f.cur].RawVector().Data }

// Reduced 当前行还原态浓度
func (f *Field) Reduced() []float64 { return f.red[f.cur].RawVector().Data }

// Vectors 当前行向量
func (f *Field) Vectors() (ox, red *mat.VecDense) { return f.ox[f.cur], f.red[f.cur] }

// next 下一行浓度
func (f *Field) next() (ox, red []float64) {
	n := f.cur ^ 1
	return f.ox[n].RawVector().Data, f.red[n].RawVector().Data
}

// advance 下一行成为当前行
func (f *Field) advance() {
	f.cur ^= 1
	f.step++
}
