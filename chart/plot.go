// Package chart 绘制循环伏安曲线
package chart

import (
	"fmt"
	"image/color"
	"io"

	"voltammetry/record"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CurrentScale 电流显示倍率 A → μA
const CurrentScale = 1e6

// 图像尺寸
var (
	Width  = 14 * vg.Inch
	Height = 10 * vg.Inch
)

var (
	lastColor    = color.RGBA{B: 255, A: 255}
	earlierColor = color.RGBA{R: 128, G: 128, B: 128, A: 180}
)

// xys 电位-电流点列，电流按 CurrentScale 缩放
func xys(e, i []float64) plotter.XYs {
	pts := make(plotter.XYs, len(e))
	for k := range e {
		pts[k].X = e[k]
		pts[k].Y = i[k] * CurrentScale
	}
	return pts
}

// Plot 电流-电位曲线，横轴反向
// 最后循环为蓝色实线，之前的循环为灰色虚线。
func Plot(v *record.View, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Potential (V)"
	p.Y.Label.Text = "Current Density (μA/cm²)"
	p.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(grid)

	n := v.Cycles()
	e, i := v.LastCycle()
	last, err := plotter.NewLine(xys(e, i))
	if err != nil {
		return nil, err
	}
	last.LineStyle.Width = vg.Points(3)
	last.LineStyle.Color = lastColor
	p.Add(last)
	p.Legend.Add(fmt.Sprintf("Cycle %d", n), last)

	// 每个循环单独成线，避免连接循环间的电位跳变
	for c := 0; c < n-1; c++ {
		e, i := v.Cycle(c)
		l, err := plotter.NewLine(xys(e, i))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(2)
		l.LineStyle.Color = earlierColor
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(l)
		if c == 0 {
			label := "Cycle 1"
			if n > 2 {
				label = fmt.Sprintf("Cycles 1-%d", n-1)
			}
			p.Legend.Add(label, l)
		}
	}
	return p, nil
}

// Save 保存图像，格式由扩展名决定（png/svg/pdf/jpg）
func Save(v *record.View, title, filename string) error {
	p, err := Plot(v, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}

// Write 按格式写出图像
func Write(w io.Writer, v *record.View, title, format string) error {
	p, err := Plot(v, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// PlotProfiles 浓度剖面，横轴为距电极距离
func PlotProfiles(profiles []record.Profile, dx float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Concentration profiles"
	p.X.Label.Text = "Distance (cm)"
	p.Y.Label.Text = "Concentration (mol/cm³)"
	p.Add(plotter.NewGrid())
	for n, pr := range profiles {
		for _, s := range []struct {
			name string
			c    []float64
			dash bool
		}{{"O", pr.Oxidized, false}, {"R", pr.Reduced, true}} {
			pts := make(plotter.XYs, len(s.c))
			for x, c := range s.c {
				pts[x].X = float64(x) * dx
				pts[x].Y = c
			}
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			l.LineStyle.Color = plotutil.Color(n)
			if s.dash {
				l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			}
			p.Add(l)
			p.Legend.Add(fmt.Sprintf("%s t=%.2fs", s.name, pr.Time), l)
		}
	}
	return p, nil
}
