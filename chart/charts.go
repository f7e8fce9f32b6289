package chart

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"voltammetry/record"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页曲线绘制
// 电位与电流随时间变化，每个循环一条曲线，按循环内时间对齐。
type Charts struct {
	View   *record.View
	Title  string
	Stride int // 抽样间隔，≤1 表示不抽样
}

func (c *Charts) stride() int {
	if c.Stride < 1 {
		return 1
	}
	return c.Stride
}

// newLine 创建折线图
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "t (s)",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	return line
}

// series 抽样第 c 个循环
func (c *Charts) series(values []float64, scale float64) []opts.LineData {
	step := c.stride()
	items := make([]opts.LineData, 0, len(values)/step+1)
	for k := 0; k < len(values); k += step {
		items = append(items, opts.LineData{Value: values[k] * scale})
	}
	return items
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	v := c.View
	if v == nil || v.Len() == 0 {
		return fmt.Errorf("没有可绘制的数据")
	}
	title := c.Title
	if title == "" {
		title = "循环伏安仿真"
	}
	lineE := newLine("电位曲线", title+" 电位随时间变化 (V)")
	lineI := newLine("电流曲线", title+" 电流随时间变化 (μA)")

	// 横轴为循环内时间
	step := c.stride()
	t := v.Time()
	xAxis := make([]string, 0, v.StepsPerCycle()/step+1)
	for k := 0; k < v.StepsPerCycle(); k += step {
		var x float64
		if k < len(t) {
			x = t[k]
		}
		xAxis = append(xAxis, fmt.Sprintf("%.3f", x))
	}
	lineE.SetXAxis(xAxis)
	lineI.SetXAxis(xAxis)
	for n := 0; n < v.Cycles(); n++ {
		e, i := v.Cycle(n)
		name := fmt.Sprintf("循环 %d", n+1)
		lineE.AddSeries(name, c.series(e, 1))
		lineI.AddSeries(name, c.series(i, CurrentScale))
	}

	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineE,
		lineI,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
