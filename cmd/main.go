package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"voltammetry"
	"voltammetry/chart"
	"voltammetry/params"
)

func main() {
	var (
		paramFile = flag.String("params", "", "参数文件")
		export    = flag.String("export", "", "导出最终参数到文件")
		cycles    = flag.Int("cycles", 0, "循环次数，0 使用参数文件设置")
		out       = flag.String("out", "cv.png", "曲线图像文件 (png/svg/pdf)，为空不输出")
		profiles  = flag.String("profiles", "", "浓度剖面图像文件，需设置 profile_stride")
		html      = flag.String("html", "", "网页曲线文件")
		serve     = flag.String("serve", "", "网页曲线服务地址，如 :8080")
		stride    = flag.Int("stride", 20, "网页曲线抽样间隔")
		sets      []string
	)
	flag.Func("set", "设置参数 key=value，可重复", func(s string) error {
		sets = append(sets, s)
		return nil
	})
	flag.Parse()

	p := params.Default()
	if *paramFile != "" {
		var err error
		if p, err = voltammetry.LoadParams(*paramFile); err != nil {
			log.Fatalf("加载参数失败: %v", err)
		}
	}
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			log.Fatalf("参数格式错误 %q，应为 key=value", s)
		}
		if err := p.Set(key, value); err != nil {
			log.Fatal(err)
		}
	}
	if *cycles > 0 {
		p.Cycles = *cycles
	}
	if *export != "" {
		if err := voltammetry.ExportParams(*export, p); err != nil {
			log.Fatal(err)
		}
	}

	v, err := voltammetry.Simulate(p)
	if err != nil {
		log.Fatal(err)
	}
	for c := 0; c < v.Cycles(); c++ {
		if pk, ok := v.Peaks(c); ok {
			log.Printf("循环 %d: %s", c+1, pk)
		}
	}
	if v.Cycles() > 1 {
		log.Printf("最后两循环电流最大差 %.4g A", v.PeriodicResidual())
	}

	title := fmt.Sprintf("Simulated Reversible CV (v = %g V/s)", p.ScanRate)
	if *out != "" {
		if err := chart.Save(v, title, *out); err != nil {
			log.Fatal(err)
		}
		log.Printf("曲线已保存 %s", *out)
	}
	if *profiles != "" {
		pl, err := chart.PlotProfiles(v.Profiles(), p.XMax/float64(p.L))
		if err != nil {
			log.Fatal(err)
		}
		if err := pl.Save(chart.Width, chart.Height, *profiles); err != nil {
			log.Fatal(err)
		}
	}

	c := &chart.Charts{View: v, Title: title, Stride: *stride}
	if *html != "" {
		file, err := os.Create(*html)
		if err != nil {
			log.Fatal(err)
		}
		if err := c.Render(file); err != nil {
			log.Fatal(err)
		}
		file.Close()
	}
	if *serve != "" {
		http.HandleFunc("/", c.Handler)
		log.Printf("网页曲线 http://%s", *serve)
		log.Fatal(http.ListenAndServe(*serve, nil))
	}
}
