package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// 插件系统错误
var (
	// ErrPluginNotFound 未注册的插件名称
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrAlreadyRegistered 重复注册
	ErrAlreadyRegistered = errors.New("plugin already registered")
)

// Factory 插件工厂函数。
type Factory func() Plugin

// Registry 插件注册表。
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	external  []Descriptor
}

// globalRegistry 全局注册表实例
var globalRegistry = &Registry{
	factories: make(map[string]Factory),
}

// Register 向全局注册表注册插件。
func Register(name string, factory Factory) error {
	return globalRegistry.Register(name, factory)
}

// Get 从全局注册表获取插件实例。
func Get(name string) (Plugin, error) {
	return globalRegistry.Get(name)
}

// Names 返回全局注册表中所有插件名称。
func Names() []string {
	return globalRegistry.Names()
}

// DefaultRegistry 返回全局注册表。
func DefaultRegistry() *Registry {
	return globalRegistry
}

// Register 注册插件工厂。
func (r *Registry) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.factories[name] = factory
	return nil
}

// Get 获取插件实例。
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrPluginNotFound, name)
	}
	return factory(), nil
}

// Names 返回所有已注册插件的名称（字典序）。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterExternal 登记一个外部插件描述符（仅用于能力发现展示）。
func (r *Registry) RegisterExternal(desc Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.external = append(r.external, desc)
}

// External 返回已登记的外部插件描述符。
func (r *Registry) External() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, len(r.external))
	copy(out, r.external)
	return out
}

// suggestName 在候选名称中模糊匹配最接近的一个，找不到返回空串。
func suggestName(name string, candidates []string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// unknownActionMessage 构造未知动作的错误消息，附带近似名建议。
func unknownActionMessage(action string, known []string) string {
	msg := "unknown action: " + action
	if suggestion := suggestName(action, known); suggestion != "" {
		msg += ` (did you mean "` + suggestion + `"?)`
	}
	return msg
}

// init 注册内建插件。
func init() {
	if err := Register("plugin-go-markdown", func() Plugin { return NewMarkdownPlugin() }); err != nil {
		panic(err)
	}
	if err := Register("plugin-go-collection", func() Plugin { return NewCollectionPlugin() }); err != nil {
		panic(err)
	}
}
