package grid

import (
	"errors"
	"math"
	"testing"

	"voltammetry/params"

	"github.com/stretchr/testify/require"
)

// TestDefaultGrid 默认参数下的离散化
func TestDefaultGrid(t *testing.T) {
	p := params.Default()
	p.Cycles = 1
	g, err := New(p)
	require.NoError(t, err)

	require.InDelta(t, 2e-4, g.Dx, 1e-18)
	require.InDelta(t, 0.0018, g.Dt, 1e-15)
	require.InDelta(t, 0.45, g.Alpha, 1e-12)
	require.InDelta(t, 12.0, CycleTime(p), 1e-12)
	require.Equal(t, int(math.Floor(CycleTime(p)/g.Dt)), g.StepsPerCycle)
	require.Equal(t, 6666, g.StepsPerCycle)
	require.Equal(t, g.StepsPerCycle, g.M)
	require.Len(t, g.Waveform, g.M)
	require.Equal(t, 0.3, g.Waveform[0])
}

func TestCycles(t *testing.T) {
	p := params.Default()
	p.L = 100
	for cycles := 1; cycles <= 4; cycles++ {
		p.Cycles = cycles
		g, err := New(p)
		require.NoError(t, err)
		require.Equal(t, g.StepsPerCycle*cycles, g.M)
		require.Len(t, g.Waveform, g.M)
		for c := 0; c < cycles; c++ {
			start, end := g.CycleRange(c)
			require.Equal(t, p.Ei, g.Waveform[start])
			require.Equal(t, p.Ef, g.Waveform[end-1])
		}
	}
}

func TestTimes(t *testing.T) {
	p := params.Default()
	p.L = 50
	g, err := New(p)
	require.NoError(t, err)
	ts := g.Times()
	require.Len(t, ts, g.M)
	require.Equal(t, 0.0, ts[0])
	require.InDelta(t, float64(g.M)*g.Dt, ts[g.M-1], 1e-9)
}

func TestInvalid(t *testing.T) {
	p := params.Default()
	p.L = 2
	_, err := New(p)
	require.True(t, errors.Is(err, params.ErrConfig))

	// 电位不变化，单循环步数为 0
	p = params.Default()
	p.ELambda, p.Ef = p.Ei, p.Ei
	_, err = New(p)
	require.True(t, errors.Is(err, params.ErrConfig))
	require.False(t, errors.Is(err, params.ErrUnstable))
}

// TestStability 稳定比边界
func TestStability(t *testing.T) {
	p := params.Default()
	p.AlphaTarget = 0.5
	g, err := New(p)
	require.NoError(t, err)
	require.InDelta(t, 0.5, g.Alpha, 1e-12)

	p.AlphaTarget = 0.5000001
	_, err = New(p)
	require.True(t, errors.Is(err, params.ErrUnstable))

	// 指定 dt 使 alpha > 0.5
	p = params.Default()
	p.TimeStep = 0.6 * 2e-4 * 2e-4 / p.D
	_, err = New(p)
	require.True(t, errors.Is(err, params.ErrUnstable))

	p.TimeStep = 0.001
	g, err = New(p)
	require.NoError(t, err)
	require.InDelta(t, 0.25, g.Alpha, 1e-9)
	require.Equal(t, int(math.Floor(CycleTime(p)/0.001)), g.StepsPerCycle)
}
