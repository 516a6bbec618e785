// Package qualifier 实现一组有名字的集合归约器（qualifier）：
// 对一个有序序列做一次纯归约，返回计算结果或带描述的错误，
// 绝不向调用方抛出运行时故障。
package qualifier

import (
	"errors"
	"fmt"
	"sort"
)

// 预定义错误
var (
	// ErrUnknownQualifier 未注册的限定符名称
	ErrUnknownQualifier = errors.New("unknown qualifier")

	// ErrEmptyList 操作要求至少一个元素
	ErrEmptyList = errors.New("requires a non-empty list")

	// ErrNoNumericElements 数值子集为空
	ErrNoNumericElements = errors.New("requires numeric list elements")
)

// Descriptor 向宿主公布的限定符元数据。
type Descriptor struct {
	Name        string   `json:"name" toml:"name"`
	InputTypes  []string `json:"inputTypes" toml:"input_types"`
	Description string   `json:"description" toml:"description"`
}

// reducer 无状态的纯归约函数。
type reducer func(values []Value) (Value, error)

// reducers 固定的限定符注册表。
var reducers = map[string]reducer{
	"sort":   Sort,
	"unique": Unique,
	"sum":    Sum,
	"avg":    Avg,
	"min":    Min,
	"max":    Max,
}

// descriptors 的顺序即对外公布顺序。
var descriptors = []Descriptor{
	{Name: "sort", InputTypes: []string{"List"}, Description: "Sorts a list in ascending order"},
	{Name: "unique", InputTypes: []string{"List"}, Description: "Returns unique elements from a list"},
	{Name: "sum", InputTypes: []string{"List"}, Description: "Returns the sum of numeric list elements"},
	{Name: "avg", InputTypes: []string{"List"}, Description: "Returns the average of numeric list elements"},
	{Name: "min", InputTypes: []string{"List"}, Description: "Returns the minimum element"},
	{Name: "max", InputTypes: []string{"List"}, Description: "Returns the maximum element"},
}

// Apply 按名称执行限定符。
// 未知名称返回 ErrUnknownQualifier 包装的错误，不会 panic。
func Apply(name string, values []Value) (Value, error) {
	fn, ok := reducers[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownQualifier, name)
	}
	return fn(values)
}

// Names 返回所有已注册的限定符名称。
func Names() []string {
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	return names
}

// Descriptors 返回所有限定符的元数据。
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// Sort 升序排序。
// 元素相互可自然比较时按自然顺序，否则整体退化为字符串表示比较。
func Sort(values []Value) (Value, error) {
	sorted := make([]Value, len(values))
	copy(sorted, values)

	if mutuallyComparable(sorted) {
		sort.SliceStable(sorted, func(i, j int) bool {
			return compareNatural(sorted[i], sorted[j]) < 0
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Repr() < sorted[j].Repr()
		})
	}
	return List(sorted...), nil
}

// Unique 保留首次出现顺序的去重。
// 两个值相等的条件：完全一致，或都是序列且逐元素相等。
func Unique(values []Value) (Value, error) {
	unique := make([]Value, 0, len(values))
	for _, v := range values {
		seen := false
		for _, u := range unique {
			if v.Equal(u) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, v)
		}
	}
	return List(unique...), nil
}

// Sum 对数值子集求和，静默忽略非数值元素。
// 全整数输入返回整数结果；数值子集为空时报错。
func Sum(values []Value) (Value, error) {
	var (
		intSum   int64
		floatSum float64
		count    int
		allInt   = true
	)
	for _, v := range values {
		if !v.IsNumeric() {
			continue
		}
		count++
		if v.Kind() == KindInt {
			intSum += v.Int64()
		} else {
			allInt = false
		}
		floatSum += v.Float64()
	}
	if count == 0 {
		return Value{}, fmt.Errorf("sum %w", ErrNoNumericElements)
	}
	if allInt {
		return Int(intSum), nil
	}
	// 混合输入得到整值浮点时仍保持浮点表示
	return Float(floatSum), nil
}

// Avg 对数值子集求平均，静默忽略非数值元素。
// 结果总是浮点数；数值子集为空时报错。
func Avg(values []Value) (Value, error) {
	var (
		total float64
		count int
	)
	for _, v := range values {
		if !v.IsNumeric() {
			continue
		}
		total += v.Float64()
		count++
	}
	if count == 0 {
		return Value{}, fmt.Errorf("avg %w", ErrNoNumericElements)
	}
	return Float(total / float64(count)), nil
}

// Min 返回最小元素，空序列报错。
func Min(values []Value) (Value, error) {
	return extremum("min", values, -1)
}

// Max 返回最大元素，空序列报错。
func Max(values []Value) (Value, error) {
	return extremum("max", values, 1)
}

// extremum 在自然顺序（或退化的字符串顺序）下扫描极值。
// direction 为 -1 求最小、1 求最大。
func extremum(name string, values []Value, direction int) (Value, error) {
	if len(values) == 0 {
		return Value{}, fmt.Errorf("%s %w", name, ErrEmptyList)
	}

	natural := mutuallyComparable(values)
	best := values[0]
	for _, v := range values[1:] {
		var c int
		if natural {
			c = compareNatural(v, best)
		} else {
			c = compareRepr(v, best)
		}
		if c*direction > 0 {
			best = v
		}
	}
	return best, nil
}

func compareRepr(a, b Value) int {
	switch ar, br := a.Repr(), b.Repr(); {
	case ar < br:
		return -1
	case ar > br:
		return 1
	default:
		return 0
	}
}
