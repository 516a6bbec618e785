// Package config 加载工具配置。
// 配置文件是可选的：找不到时使用内置默认值。
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 工具配置。
type Config struct {
	// Debug 输出调试日志
	Debug bool `mapstructure:"debug"`

	// Render 渲染相关配置
	Render RenderConfig `mapstructure:"render"`

	// SVG SVG 抽取相关配置
	SVG SVGConfig `mapstructure:"svg"`

	// Plugins 插件相关配置
	Plugins PluginsConfig `mapstructure:"plugins"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	// StripFrontMatter 渲染和统计前剥离 YAML front matter
	StripFrontMatter bool `mapstructure:"strip_front_matter"`
}

// SVGConfig SVG 抽取配置。
type SVGConfig struct {
	// ImagesDir SVG 输出目录
	ImagesDir string `mapstructure:"images_dir"`
	// ProcessedDir 处理后 Markdown 的输出目录
	ProcessedDir string `mapstructure:"processed_dir"`
	// RefPrefix 图片引用的相对路径前缀
	RefPrefix string `mapstructure:"ref_prefix"`
}

// PluginsConfig 插件配置。
type PluginsConfig struct {
	// Descriptors 外部插件 TOML 描述文件路径列表
	Descriptors []string `mapstructure:"descriptors"`
}

// Default 返回内置默认配置。
func Default() *Config {
	return &Config{
		SVG: SVGConfig{
			ImagesDir:    "images",
			ProcessedDir: "processed",
			RefPrefix:    "images",
		},
	}
}

// Load 加载配置。
// configPath 为空时在 $HOME 和当前目录搜索 .mdkit.yaml；
// 没有任何配置文件时返回默认配置。
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
		v.SetConfigName(".mdkit")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && configPath == "" {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("svg.images_dir", def.SVG.ImagesDir)
	v.SetDefault("svg.processed_dir", def.SVG.ProcessedDir)
	v.SetDefault("svg.ref_prefix", def.SVG.RefPrefix)
}
