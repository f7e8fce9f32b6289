package params

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// NetList 参数行定义
// 形如 "key value # 注释"，注释字段已被去除。
type NetList []string

// ParseLine 拆分参数行，去除注释字段
func ParseLine(line string) NetList {
	fields := strings.Fields(line)
	for i, f := range fields {
		if f[0] == '#' {
			return NetList(fields[:i])
		}
	}
	return NetList(fields)
}

// number 可解析的数值类型
type number interface {
	constraints.Integer | constraints.Float
}

// parseNumber 解析整数或浮点数
func parseNumber[T number](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		v, err := strconv.ParseFloat(s, 64)
		return T(v), err
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		return T(v), err
	}
}

func setNumber[T number](dst *T, key, s string) error {
	v, err := parseNumber[T](s)
	if err != nil {
		return fmt.Errorf("%w: 参数 %s 数值无效 %q", ErrConfig, key, s)
	}
	*dst = v
	return nil
}

// normalizeKey 参数名不区分大小写，忽略 '_' 与 '-'
func normalizeKey(key string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(key))
}

// Set 按参数名设置参数值
func (p *Params) Set(key, value string) error {
	switch normalizeKey(key) {
	case "n":
		return setNumber(&p.N, key, value)
	case "d":
		return setNumber(&p.D, key, value)
	case "cbulk":
		return setNumber(&p.CBulk, key, value)
	case "credinit", "cred":
		return setNumber(&p.CRedInit, key, value)
	case "ei":
		return setNumber(&p.Ei, key, value)
	case "elambda", "eswitch":
		return setNumber(&p.ELambda, key, value)
	case "ef":
		return setNumber(&p.Ef, key, value)
	case "v", "scanrate":
		return setNumber(&p.ScanRate, key, value)
	case "e0", "estart":
		return setNumber(&p.E0, key, value)
	case "r":
		return setNumber(&p.R, key, value)
	case "t":
		return setNumber(&p.T, key, value)
	case "f":
		return setNumber(&p.F, key, value)
	case "l":
		return setNumber(&p.L, key, value)
	case "cycles", "ncycles":
		return setNumber(&p.Cycles, key, value)
	case "alpha", "alphatarget":
		return setNumber(&p.AlphaTarget, key, value)
	case "xmax":
		return setNumber(&p.XMax, key, value)
	case "dt", "timestep":
		return setNumber(&p.TimeStep, key, value)
	case "profilestride":
		return setNumber(&p.ProfileStride, key, value)
	}
	return fmt.Errorf("%w: 未知参数 %s", ErrConfig, key)
}

// Load 加载参数文件，未出现的参数保持默认值
func Load(r io.Reader) (Params, error) {
	p := Default()
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '.' {
			continue
		}
		fields := ParseLine(line)
		if len(fields) != 2 {
			return p, fmt.Errorf("%w: 第 %d 行格式错误: %s", ErrConfig, n, line)
		}
		if err := p.Set(fields[0], fields[1]); err != nil {
			return p, fmt.Errorf("第 %d 行: %w", n, err)
		}
	}
	return p, scanner.Err()
}

// Export 导出参数文件
func (p Params) Export(w io.Writer) error {
	writer := bufio.NewWriter(w)
	for _, kv := range []struct {
		key   string
		value any
	}{
		{"n", p.N},
		{"D", p.D},
		{"C_bulk", p.CBulk},
		{"C_red_init", p.CRedInit},
		{"E_i", p.Ei},
		{"E_lambda", p.ELambda},
		{"E_f", p.Ef},
		{"v", p.ScanRate},
		{"E0", p.E0},
		{"R", p.R},
		{"T", p.T},
		{"F", p.F},
		{"L", p.L},
		{"cycles", p.Cycles},
		{"alpha", p.AlphaTarget},
		{"x_max", p.XMax},
		{"dt", p.TimeStep},
		{"profile_stride", p.ProfileStride},
	} {
		switch v := kv.value.(type) {
		case int:
			fmt.Fprintf(writer, "%s %d\n", kv.key, v)
		case float64:
			fmt.Fprintf(writer, "%s %s\n", kv.key, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return writer.Flush()
}
