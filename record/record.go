package record

// Profile 浓度剖面快照
type Profile struct {
	Step     int       // 时间步
	Time     float64   // 时间
	Oxidized []float64 // 氧化态浓度
	Reduced  []float64 // 还原态浓度
}

// Record 记录仿真历史
// 电位与时间在创建时给定，电流由步进过程逐步写入。
type Record struct {
	Potential     []float64 // 电位列
	Current       []float64 // 电流列
	Time          []float64 // 时间列
	Profiles      []Profile // 浓度剖面列
	StepsPerCycle int       // 单循环步数
	Cycles        int       // 循环次数
	ProfileStride int       // 剖面记录间隔，0 不记录
}

// New 创建记录
func New(potential, time []float64, stepsPerCycle, cycles, profileStride int) *Record {
	return &Record{
		Potential:     potential,
		Current:       make([]float64, len(potential)),
		Time:          time,
		StepsPerCycle: stepsPerCycle,
		Cycles:        cycles,
		ProfileStride: profileStride,
	}
}

// Update 记录第 k 步电流
func (list *Record) Update(k int, current float64) {
	list.Current[k] = current
}

// Snapshot 按间隔记录浓度剖面，数据被复制
func (list *Record) Snapshot(k int, oxidized, reduced []float64) {
	if list.ProfileStride <= 0 || k%list.ProfileStride != 0 {
		return
	}
	var t float64
	if k < len(list.Time) {
		t = list.Time[k]
	}
	list.Profiles = append(list.Profiles, Profile{
		Step:     k,
		Time:     t,
		Oxidized: append([]float64{}, oxidized...),
		Reduced:  append([]float64{}, reduced...),
	})
}

// View 只读结果视图
func (list *Record) View() *View { return &View{rec: list} }
