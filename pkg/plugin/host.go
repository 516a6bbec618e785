package plugin

import (
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Host 插件调用边界。
// 负责按名称定位插件、分配调用 ID、记录调用日志，
// 并保证任何失败都以结构化错误响应的形式返回给调用方。
type Host struct {
	registry *Registry
	logger   *zap.Logger
}

// NewHost 基于全局注册表创建宿主。
func NewHost(logger *zap.Logger) *Host {
	return NewHostWithRegistry(globalRegistry, logger)
}

// NewHostWithRegistry 基于指定注册表创建宿主。
func NewHostWithRegistry(registry *Registry, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{registry: registry, logger: logger}
}

// Discover 返回所有已注册插件的元数据（能力发现调用）。
// 外部描述符登记的插件也会出现在结果中。
func (h *Host) Discover() []Info {
	infos := make([]Info, 0)
	for _, name := range h.registry.Names() {
		p, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, p.Info())
	}
	for _, desc := range h.registry.External() {
		infos = append(infos, desc.Info())
	}
	return infos
}

// Invoke 调用插件动作，返回 JSON 响应。
func (h *Host) Invoke(pluginName, action string, input []byte) []byte {
	callID := uuid.New().String()
	log := h.logger.With(
		zap.String("call_id", callID),
		zap.String("plugin", pluginName),
		zap.String("action", action),
	)

	p, err := h.registry.Get(pluginName)
	if err != nil {
		log.Warn("插件未注册", zap.Error(err))
		return errorResponse(err.Error())
	}

	log.Debug("调用插件动作", zap.Int("input_size", len(input)))
	// 插件实现可能来自第三方，边界上兜底恢复 panic
	out := safeCall(func() []byte { return p.Call(action, input) })
	h.logOutcome(log, out)
	return out
}

// InvokeQualifier 调用插件限定符，返回 JSON 响应。
func (h *Host) InvokeQualifier(pluginName, qualifier string, input []byte) []byte {
	callID := uuid.New().String()
	log := h.logger.With(
		zap.String("call_id", callID),
		zap.String("plugin", pluginName),
		zap.String("qualifier", qualifier),
	)

	p, err := h.registry.Get(pluginName)
	if err != nil {
		log.Warn("插件未注册", zap.Error(err))
		return errorResponse(err.Error())
	}

	if declared := gjson.GetBytes(input, "type"); declared.Exists() {
		// type 字段仅供参考，不参与判定
		log.Debug("请求声明的元素类型", zap.String("type", declared.String()))
	}

	out := safeCall(func() []byte { return p.Qualify(qualifier, input) })
	h.logOutcome(log, out)
	return out
}

// logOutcome 记录调用结果是成功还是结构化错误。
func (h *Host) logOutcome(log *zap.Logger, out []byte) {
	if errMsg := gjson.GetBytes(out, "error"); errMsg.Exists() {
		log.Warn("插件返回错误", zap.String("error", errMsg.String()))
		return
	}
	log.Debug("插件调用完成", zap.Int("output_size", len(out)))
}
