package qualifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind 值的类型标签。
type Kind int

const (
	// KindNull 空值
	KindNull Kind = iota
	// KindBool 布尔值
	KindBool
	// KindInt 整数
	KindInt
	// KindFloat 浮点数
	KindFloat
	// KindString 字符串
	KindString
	// KindList 有序序列
	KindList
)

// String 返回类型标签的字符串表示。
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Value 带类型标签的不可变值。
// 序列元素可能是数字、字符串或嵌套序列，比较规则是：
// 自然顺序优先，类型不可比时退化为字符串表示比较。
type Value struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	listVal  []Value
}

// Null 构造空值。
func Null() Value { return Value{kind: KindNull} }

// Bool 构造布尔值。
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int 构造整数值。
func Int(i int64) Value { return Value{kind: KindInt, intVal: i} }

// Float 构造浮点值。
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// String 构造字符串值。
func String(s string) Value { return Value{kind: KindString, strVal: s} }

// List 构造序列值。
func List(items ...Value) Value { return Value{kind: KindList, listVal: items} }

// Kind 返回值的类型标签。
func (v Value) Kind() Kind { return v.kind }

// IsNumeric 整数和浮点数视为数值类型。
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// IsList 是否为序列。
func (v Value) IsList() bool { return v.kind == KindList }

// Float64 数值的浮点表示；非数值返回 0。
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.intVal)
	case KindFloat:
		return v.floatVal
	default:
		return 0
	}
}

// Int64 整数值；非整数返回 0。
func (v Value) Int64() int64 {
	if v.kind == KindInt {
		return v.intVal
	}
	return 0
}

// Str 字符串值；非字符串返回空串。
func (v Value) Str() string {
	if v.kind == KindString {
		return v.strVal
	}
	return ""
}

// Items 序列元素；非序列返回 nil。
func (v Value) Items() []Value {
	if v.kind == KindList {
		return v.listVal
	}
	return nil
}

// Repr 返回用于退化比较和展示的字符串表示。
func (v Value) Repr() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindString:
		return v.strVal
	case KindList:
		parts := make([]string, len(v.listVal))
		for i, item := range v.listVal {
			parts[i] = item.Repr()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// Equal 判断两个值是否相等：数值跨类型按数值相等（1 == 1.0），
// 序列逐元素比较，其余要求类型和内容都一致。
func (v Value) Equal(other Value) bool {
	if v.IsNumeric() && other.IsNumeric() {
		return v.Float64() == other.Float64()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindString:
		return v.strVal == other.strVal
	case KindList:
		if len(v.listVal) != len(other.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MarshalJSON 输出值的自然 JSON 表示。
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.boolVal)
	case KindInt:
		return []byte(strconv.FormatInt(v.intVal, 10)), nil
	case KindFloat:
		return json.Marshal(v.floatVal)
	case KindString:
		return json.Marshal(v.strVal)
	case KindList:
		if v.listVal == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.listVal)
	default:
		return nil, fmt.Errorf("cannot marshal value of kind %s", v.kind)
	}
}

// UnmarshalJSON 从 JSON 解码，整数和浮点数保持区分。
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// Decode 将一段 JSON 解码为 Value。
// 使用 json.Number 区分整数和浮点数。
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, fmt.Errorf("failed to decode value: %w", err)
	}
	return FromInterface(raw)
}

// FromInterface 将 encoding/json 解码出的动态值转换为 Value。
func FromInterface(raw interface{}) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(val), nil
	case json.Number:
		if i, err := strconv.ParseInt(val.String(), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q: %w", val.String(), err)
		}
		return Float(f), nil
	case float64:
		// 非 UseNumber 路径：整值浮点还原为整数
		if val == float64(int64(val)) {
			return Int(int64(val)), nil
		}
		return Float(val), nil
	case string:
		return String(val), nil
	case []interface{}:
		items := make([]Value, 0, len(val))
		for _, item := range val {
			decoded, err := FromInterface(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, decoded)
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

// compareClass 自然比较的等价类。
type compareClass int

const (
	classOther compareClass = iota
	classNumeric
	classString
	classList
)

func (v Value) class() compareClass {
	switch {
	case v.IsNumeric():
		return classNumeric
	case v.kind == KindString:
		return classString
	case v.kind == KindList:
		return classList
	default:
		return classOther
	}
}

// mutuallyComparable 判断一组值是否两两可自然比较：
// 全部是数值、全部是字符串，或全部是（元素也相互可比的）序列。
func mutuallyComparable(values []Value) bool {
	if len(values) < 2 {
		return true
	}
	class := values[0].class()
	if class == classOther {
		return false
	}
	for _, v := range values[1:] {
		if v.class() != class {
			return false
		}
	}
	if class == classList {
		var elements []Value
		for _, v := range values {
			elements = append(elements, v.listVal...)
		}
		return mutuallyComparable(elements)
	}
	return true
}

// compareNatural 自然顺序比较，仅对相互可比的值有意义。
func compareNatural(a, b Value) int {
	switch {
	case a.kind == KindInt && b.kind == KindInt:
		switch {
		case a.intVal < b.intVal:
			return -1
		case a.intVal > b.intVal:
			return 1
		default:
			return 0
		}
	case a.IsNumeric() && b.IsNumeric():
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case a.kind == KindString && b.kind == KindString:
		return strings.Compare(a.strVal, b.strVal)
	case a.kind == KindList && b.kind == KindList:
		for i := 0; i < len(a.listVal) && i < len(b.listVal); i++ {
			if c := compareNatural(a.listVal[i], b.listVal[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a.listVal) < len(b.listVal):
			return -1
		case len(a.listVal) > len(b.listVal):
			return 1
		default:
			return 0
		}
	default:
		// 不可比类型退化为字符串表示
		return strings.Compare(a.Repr(), b.Repr())
	}
}
