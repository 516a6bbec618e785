package plugin

import (
	"github.com/nerdneilsfield/go-mdkit/pkg/qualifier"
	"github.com/tidwall/gjson"
)

// CollectionPlugin 提供集合限定符的插件。
type CollectionPlugin struct{}

// NewCollectionPlugin 创建集合限定符插件。
func NewCollectionPlugin() *CollectionPlugin {
	return &CollectionPlugin{}
}

// Info 返回插件元数据，动作列表为空，能力全部通过限定符公布。
func (p *CollectionPlugin) Info() Info {
	return Info{
		Name:       "plugin-go-collection",
		Version:    "1.0.0",
		Actions:    []string{},
		Qualifiers: qualifier.Descriptors(),
	}
}

// Call 集合插件不提供动作。
func (p *CollectionPlugin) Call(action string, input []byte) []byte {
	return errorResponse(unknownActionMessage(action, nil))
}

// Qualify 执行一个限定符。
// 请求的 value 字段是被归约的序列，type 字段仅作参考，不参与判定。
func (p *CollectionPlugin) Qualify(name string, input []byte) []byte {
	return safeCall(func() []byte {
		if !isKnownQualifier(name) {
			return errorResponse(unknownQualifierMessage(name))
		}

		value := gjson.GetBytes(input, "value")
		if !value.Exists() || !value.IsArray() {
			return errorResponse(name + " requires a list")
		}

		list, err := qualifier.Decode([]byte(value.Raw))
		if err != nil {
			return errorResponse(err.Error())
		}

		result, err := qualifier.Apply(name, list.Items())
		if err != nil {
			return errorResponse(err.Error())
		}
		return marshalResponse(ResultResponse{Result: result})
	})
}

// isKnownQualifier 判断名称是否为已注册限定符。
func isKnownQualifier(name string) bool {
	for _, known := range qualifier.Names() {
		if known == name {
			return true
		}
	}
	return false
}

// unknownQualifierMessage 构造未知限定符的错误消息，附带近似名建议。
func unknownQualifierMessage(name string) string {
	msg := "unknown qualifier: " + name
	if suggestion := suggestName(name, qualifier.Names()); suggestion != "" {
		msg += ` (did you mean "` + suggestion + `"?)`
	}
	return msg
}
