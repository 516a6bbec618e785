package plugin

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/nerdneilsfield/go-mdkit/pkg/qualifier"
)

// Descriptor 外部插件的 TOML 描述文件。
// 宿主无法加载外部插件的代码，但可以通过描述文件
// 把它们纳入能力发现列表。
type Descriptor struct {
	Name        string                 `toml:"name"`
	Version     string                 `toml:"version"`
	Description string                 `toml:"description"`
	Actions     []string               `toml:"actions"`
	Qualifiers  []qualifier.Descriptor `toml:"qualifiers"`
}

// LoadDescriptor 从 TOML 文件加载外部插件描述符。
func LoadDescriptor(path string) (*Descriptor, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("plugin descriptor file not found: %s", path)
	}

	var desc Descriptor
	if _, err := toml.DecodeFile(path, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse plugin descriptor: %w", err)
	}

	if desc.Name == "" {
		return nil, fmt.Errorf("plugin descriptor missing name: %s", path)
	}
	if desc.Version == "" {
		desc.Version = "0.0.0"
	}

	return &desc, nil
}

// Info 把描述符转换为能力发现元数据。
func (d *Descriptor) Info() Info {
	return Info{
		Name:       d.Name,
		Version:    d.Version,
		Actions:    d.Actions,
		Qualifiers: d.Qualifiers,
	}
}
