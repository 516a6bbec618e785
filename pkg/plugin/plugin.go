// Package plugin 实现 ARO 风格的插件调用约定：
// 每个能力接收一段 JSON 编码的请求（至少包含 data 字段，
// 限定符额外包含 value 和 type 字段），返回一段 JSON 编码的响应。
// 响应要么携带成功结果，要么携带 {"error": msg}，二者互斥。
// 边界上所有故障（包括 panic）都被转换为结构化错误响应，
// 绝不向宿主传播原始异常。
package plugin

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/nerdneilsfield/go-mdkit/pkg/qualifier"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Info 插件能力发现返回的静态元数据。
type Info struct {
	Name       string                 `json:"name"`
	Version    string                 `json:"version"`
	Actions    []string               `json:"actions"`
	Qualifiers []qualifier.Descriptor `json:"qualifiers,omitempty"`
}

// Plugin 是所有插件实现的公共接口。
// Call 和 Qualify 总是返回 JSON 响应，没有 Go 层面的错误：
// 失败被编码为 {"error": msg}。
type Plugin interface {
	// Info 返回插件元数据（能力发现）
	Info() Info

	// Call 执行一个动作，input 是 JSON 编码的请求
	Call(action string, input []byte) []byte

	// Qualify 执行一个限定符，input 是 JSON 编码的请求
	Qualify(name string, input []byte) []byte
}

// RenderResponse to-html 动作的成功响应。
type RenderResponse struct {
	HTML         string `json:"html"`
	InputLength  int    `json:"input_length"`
	OutputLength int    `json:"output_length"`
}

// LinksResponse extract-links 动作的成功响应。
type LinksResponse struct {
	Links interface{} `json:"links"`
	Count int         `json:"count"`
}

// HeadingsResponse extract-headings 动作的成功响应。
type HeadingsResponse struct {
	Headings interface{} `json:"headings"`
	Count    int         `json:"count"`
}

// ResultResponse 限定符的成功响应。
type ResultResponse struct {
	Result qualifier.Value `json:"result"`
}

// subjectText 宽松读取请求的主文本：优先 data 字段，回退 object 字段。
func subjectText(input []byte) string {
	if v := gjson.GetBytes(input, "data"); v.Exists() {
		return v.String()
	}
	return gjson.GetBytes(input, "object").String()
}

// errorResponse 构造 {"error": msg} 响应。
func errorResponse(msg string) []byte {
	out, err := sjson.SetBytes([]byte(`{}`), "error", msg)
	if err != nil {
		return []byte(`{"error":"internal error"}`)
	}
	return out
}

// marshalResponse 序列化成功响应，序列化失败时退化为错误响应。
func marshalResponse(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResponse(fmt.Sprintf("failed to encode response: %v", err))
	}
	return data
}

// safeCall 捕获执行过程中的任何 panic 并转换为错误响应。
func safeCall(fn func() []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			out = errorResponse(fmt.Sprintf("%v", r))
		}
	}()
	return fn()
}

// runeLen 请求/响应长度按 Unicode 码点计。
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
