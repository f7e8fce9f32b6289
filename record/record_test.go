package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTest 3 个循环，每循环 4 步
func newTest() *Record {
	e := []float64{0.3, 0.1, -0.1, -0.3, 0.3, 0.1, -0.1, -0.3, 0.3, 0.1, -0.1, -0.3}
	rec := New(e, nil, 4, 3, 0)
	for k := range e {
		rec.Update(k, float64(k%4)-1.5+1/float64(k+1))
	}
	return rec
}

func TestViewSlices(t *testing.T) {
	v := newTest().View()
	require.Equal(t, 12, v.Len())
	require.Equal(t, 4, v.StepsPerCycle())
	require.Equal(t, 3, v.Cycles())

	e, i := v.LastCycle()
	require.Equal(t, v.Potential()[8:12], e)
	require.Equal(t, v.Current()[8:12], i)

	e, i = v.EarlierCycles()
	require.Len(t, e, 8)
	require.Len(t, i, 8)

	e, _ = v.Cycle(1)
	require.Equal(t, []float64{0.3, 0.1, -0.1, -0.3}, e)

	e, i = v.Cycle(3)
	require.Nil(t, e)
	require.Nil(t, i)
	e, _ = v.Cycle(-1)
	require.Nil(t, e)
}

func TestSingleCycle(t *testing.T) {
	rec := New([]float64{0.3, -0.3, 0.3}, nil, 3, 1, 0)
	v := rec.View()
	e, _ := v.EarlierCycles()
	require.Nil(t, e)
	e, _ = v.LastCycle()
	require.Len(t, e, 3)
	require.Equal(t, 0.0, v.PeriodicResidual())
}

func TestPeriodicResidual(t *testing.T) {
	v := newTest().View()
	// 第 2、3 循环首点差 1/5 − 1/9
	require.InDelta(t, 1.0/5-1.0/9, v.PeriodicResidual(), 1e-12)
}

func TestPeaks(t *testing.T) {
	rec := New([]float64{0.2, 0.0, -0.2, 0.0, 0.2}, nil, 5, 1, 0)
	for k, i := range []float64{0, -2, -1, 3, 1} {
		rec.Update(k, i)
	}
	pk, ok := rec.View().Peaks(0)
	require.True(t, ok)
	require.Equal(t, 1, pk.Cathodic.Index)
	require.Equal(t, -2.0, pk.Cathodic.Current)
	require.Equal(t, 3, pk.Anodic.Index)
	require.Equal(t, 0.0, pk.Anodic.Potential)
	require.Equal(t, 0.0, pk.Separation())
	require.Contains(t, pk.String(), "ΔEp")

	_, ok = rec.View().Peaks(1)
	require.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	rec := New(make([]float64, 5), []float64{0, 1, 2, 3, 4}, 5, 1, 2)
	ox := []float64{1, 2}
	for k := 0; k < 5; k++ {
		rec.Snapshot(k, ox, ox)
	}
	ox[0] = 9
	require.Len(t, rec.Profiles, 3)
	require.Equal(t, 4, rec.Profiles[2].Step)
	require.Equal(t, 4.0, rec.Profiles[2].Time)
	require.Equal(t, 1.0, rec.Profiles[0].Oxidized[0])

	// 间隔为 0 不记录
	rec = New(make([]float64, 5), nil, 5, 1, 0)
	rec.Snapshot(0, ox, ox)
	require.Empty(t, rec.Profiles)
}
