package chart

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"voltammetry/record"

	"github.com/stretchr/testify/require"
)

// testView 两个循环的合成数据
func testView() *record.View {
	e := []float64{0.3, 0, -0.3, 0, 0.3, 0.3, 0, -0.3, 0, 0.3}
	t := make([]float64, len(e))
	rec := record.New(e, t, 5, 2, 0)
	for k, i := range []float64{0, -2e-6, -1e-6, 2e-6, 0, 0, -1.8e-6, -1e-6, 1.8e-6, 0} {
		t[k] = float64(k) * 0.1
		rec.Update(k, i)
	}
	return rec.View()
}

func TestPlot(t *testing.T) {
	p, err := Plot(testView(), "CV")
	require.NoError(t, err)
	require.Equal(t, "CV", p.Title.Text)
	// 横轴反向：较大电位映射到左侧
	require.InDelta(t, 0.0, p.X.Norm(p.X.Max), 1e-12)
	require.InDelta(t, 1.0, p.X.Norm(p.X.Min), 1e-12)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testView(), "CV", "png"))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	buf.Reset()
	require.NoError(t, Write(&buf, testView(), "CV", "svg"))
	require.Contains(t, buf.String(), "<svg")
}

func TestSave(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cv.svg")
	require.NoError(t, Save(testView(), "CV", name))
	require.FileExists(t, name)
}

func TestPlotProfiles(t *testing.T) {
	profiles := []record.Profile{
		{Step: 0, Time: 0, Oxidized: []float64{1, 1, 1}, Reduced: []float64{0, 0, 0}},
		{Step: 5, Time: 0.5, Oxidized: []float64{0.2, 0.8, 1}, Reduced: []float64{0.8, 0.2, 0}},
	}
	p, err := PlotProfiles(profiles, 0.1)
	require.NoError(t, err)
	require.InDelta(t, 0.2, p.X.Max, 1e-12)
}

func TestCharts(t *testing.T) {
	c := &Charts{View: testView(), Title: "CV", Stride: 2}
	var buf bytes.Buffer
	require.NoError(t, c.Render(&buf))
	require.Contains(t, buf.String(), "echarts")

	rec := httptest.NewRecorder()
	c.Handler(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, 200, rec.Code)
	require.Contains(t, rec.Body.String(), "echarts")

	require.Error(t, (&Charts{}).Render(&buf))
}
