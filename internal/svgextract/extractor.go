// Package svgextract 从 Markdown 文件中抽取内联 SVG 块：
// 每个块写成独立的 .svg 文件（必要时注入 XML 声明、
// 根据 viewBox 补全宽高），原文中的块替换为图片引用。
package svgextract

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pterm/pterm"
	"go.uber.org/zap"

	"github.com/nerdneilsfield/go-mdkit/internal/textenc"
)

// xmlDeclaration 标准 XML 声明行。
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`

// svgPattern 匹配完整的内联 SVG 块（跨行）。
var svgPattern = regexp.MustCompile(`(?s)<svg[^>]*>.*?</svg>`)

// Figure 一个被抽取的 SVG 块。
type Figure struct {
	// Index 在源文件中的 1 起始出现序号
	Index int
	// Filename 生成的文件名，如 chapter01-fig02.svg
	Filename string
	// Content 规范化后的 SVG 内容
	Content string
}

// Options 抽取行为配置。
type Options struct {
	// ImagesDir SVG 文件的输出目录
	ImagesDir string
	// ProcessedDir 替换引用后的 Markdown 输出目录
	ProcessedDir string
	// RefPrefix 图片引用里使用的相对路径前缀
	RefPrefix string
}

// DefaultOptions 返回默认配置。
func DefaultOptions() Options {
	return Options{
		ImagesDir:    "images",
		ProcessedDir: "processed",
		RefPrefix:    "images",
	}
}

// Extractor SVG 抽取器。
type Extractor struct {
	logger *zap.Logger
	opts   Options
}

// New 创建抽取器。
func New(logger *zap.Logger, opts Options) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ImagesDir == "" {
		opts.ImagesDir = DefaultOptions().ImagesDir
	}
	if opts.ProcessedDir == "" {
		opts.ProcessedDir = DefaultOptions().ProcessedDir
	}
	if opts.RefPrefix == "" {
		opts.RefPrefix = DefaultOptions().RefPrefix
	}
	return &Extractor{logger: logger, opts: opts}
}

// Extract 纯文本变换：抽出 content 中的所有 SVG 块，
// 文件名由 baseName 和 1 起始序号决定，原位替换为图片引用。
// 不触碰文件系统。
func (e *Extractor) Extract(content, baseName string) (string, []Figure) {
	blocks := svgPattern.FindAllString(content, -1)
	if len(blocks) == 0 {
		return content, nil
	}

	figures := make([]Figure, 0, len(blocks))
	for i, block := range blocks {
		index := i + 1
		filename := fmt.Sprintf("%s-fig%02d.svg", baseName, index)
		figures = append(figures, Figure{
			Index:    index,
			Filename: filename,
			Content:  normalize(block),
		})

		ref := fmt.Sprintf("![Figure %d](%s/%s)", index, e.opts.RefPrefix, filename)
		content = strings.Replace(content, block, ref, 1)
	}
	return content, figures
}

// ProcessFile 抽取单个 Markdown 文件。
// 返回抽取的图数；输入文件缺失时报错，由调用方决定是否终止整个运行。
func (e *Extractor) ProcessFile(path string) (int, error) {
	content, err := textenc.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	processed, figures := e.Extract(content, baseName)

	if err := os.MkdirAll(e.opts.ImagesDir, 0o755); err != nil {
		return 0, err
	}
	if err := os.MkdirAll(e.opts.ProcessedDir, 0o755); err != nil {
		return 0, err
	}

	for _, fig := range figures {
		target := filepath.Join(e.opts.ImagesDir, fig.Filename)
		if err := os.WriteFile(target, []byte(fig.Content), 0o644); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", target, err)
		}
		e.logger.Info("抽取 SVG", zap.String("file", path), zap.String("figure", fig.Filename))
	}

	outPath := filepath.Join(e.opts.ProcessedDir, filepath.Base(path))
	if err := os.WriteFile(outPath, []byte(processed), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	return len(figures), nil
}

// ProcessDir 抽取目录下所有 Markdown 文件，带进度条。
func (e *Extractor) ProcessDir(dir string) (int, error) {
	pattern := filepath.Join(dir, "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no markdown files found in %s", dir)
	}
	sort.Strings(files)

	bar, _ := pterm.DefaultProgressbar.
		WithTotal(len(files)).
		WithTitle("提取 SVG").
		Start()

	total := 0
	for _, file := range files {
		count, err := e.ProcessFile(file)
		if err != nil {
			return total, err
		}
		total += count
		bar.Increment()
	}
	if _, err := bar.Stop(); err != nil {
		e.logger.Debug("进度条停止失败", zap.Error(err))
	}

	e.logger.Info("SVG 抽取完成",
		zap.Int("files", len(files)),
		zap.Int("figures", total))
	return total, nil
}

// normalize 规范化一个 SVG 块：
// 注入 XML 声明；只有 viewBox 而没有宽高时，
// 从 viewBox 推导 width/height 属性。
func normalize(svg string) string {
	if !strings.HasPrefix(svg, "<?xml") {
		svg = xmlDeclaration + "\n" + svg
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(svg))
	if err != nil {
		return svg
	}
	root := doc.Find("svg").First()

	// html 解析器把属性名统一成小写
	viewBox, hasViewBox := root.Attr("viewbox")
	_, hasWidth := root.Attr("width")
	if !hasViewBox || hasWidth {
		return svg
	}

	parts := strings.Fields(viewBox)
	if len(parts) != 4 {
		return svg
	}
	return strings.Replace(svg, "<svg ",
		fmt.Sprintf(`<svg width="%s" height="%s" `, parts[2], parts[3]), 1)
}
