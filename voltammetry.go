package voltammetry

import (
	"log"
	"os"

	"voltammetry/diffusion"
	"voltammetry/grid"
	"voltammetry/params"
	"voltammetry/record"
)

// LoadParams 加载参数文件
func LoadParams(filename string) (params.Params, error) {
	file, err := os.Open(filename)
	if err != nil {
		return params.Params{}, err
	}
	defer file.Close()
	return params.Load(file)
}

// ExportParams 导出参数文件
func ExportParams(filename string, p params.Params) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := p.Export(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Simulate 进行仿真
func Simulate(p params.Params) (*record.View, error) {
	return SimulateObserve(p, nil)
}

// SimulateObserve 进行仿真，每步边界更新后调用 observe
// 参数错误在分配浓度场之前返回。
func SimulateObserve(p params.Params, observe diffusion.Observer) (*record.View, error) {
	g, err := grid.New(p)
	if err != nil {
		return nil, err
	}
	log.Printf("离散化 %s", g)
	rec := record.New(g.Waveform, g.Times(), g.StepsPerCycle, g.Cycles, p.ProfileStride)
	if err := diffusion.NewStepper(p, g).Run(rec, observe); err != nil {
		return nil, err
	}
	return rec.View(), nil
}
