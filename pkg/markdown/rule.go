package markdown

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// Rule 渲染管线中的一条替换规则。
// 每条规则都是无状态的纯文本替换：输入当前缓冲区，输出新缓冲区。
// 规则之间的顺序是固定的，后面的规则作用于前面规则的输出，
// 因此顺序决定了优先级，不允许重排。
type Rule struct {
	// Name 规则名称（用于调试和日志）
	Name string

	// re 标准库正则（大多数规则使用）
	re *regexp.Regexp

	// re2 需要环视（lookaround）时使用 regexp2
	re2 *regexp2.Regexp

	// repl 替换模板（$1、$2 引用捕获组）
	repl string

	// fn 函数式规则（作用于整个缓冲区，如段落包裹）
	fn func(string) string
}

// Apply 将规则应用到缓冲区，返回新缓冲区。
// 规则没有错误语义：任何输入都会产生输出。
func (r Rule) Apply(text string) string {
	switch {
	case r.fn != nil:
		return r.fn(text)
	case r.re2 != nil:
		// regexp2 的 Replace 带超时保护才可能失败，失败时保持原文
		result, err := r.re2.Replace(text, r.repl, -1, -1)
		if err != nil {
			return text
		}
		return result
	case r.re != nil:
		return r.re.ReplaceAllString(text, r.repl)
	default:
		return text
	}
}

// renderRules 是 Markdown 到 HTML 的有序规则表。
// 标题规则必须从 6 级到 1 级依次检查，否则 "###" 会被 "#" 规则
// 先行部分匹配；强调规则同理，先匹配最长的定界符。
var renderRules = []Rule{
	// 标题（从长到短）
	{Name: "heading-6", re: regexp.MustCompile(`(?m)^######\s+(.+)$`), repl: "<h6>$1</h6>"},
	{Name: "heading-5", re: regexp.MustCompile(`(?m)^#####\s+(.+)$`), repl: "<h5>$1</h5>"},
	{Name: "heading-4", re: regexp.MustCompile(`(?m)^####\s+(.+)$`), repl: "<h4>$1</h4>"},
	{Name: "heading-3", re: regexp.MustCompile(`(?m)^###\s+(.+)$`), repl: "<h3>$1</h3>"},
	{Name: "heading-2", re: regexp.MustCompile(`(?m)^##\s+(.+)$`), repl: "<h2>$1</h2>"},
	{Name: "heading-1", re: regexp.MustCompile(`(?m)^#\s+(.+)$`), repl: "<h1>$1</h1>"},

	// 强调（从长到短，非贪婪）
	{Name: "bold-italic", re: regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), repl: "<strong><em>$1</em></strong>"},
	{Name: "bold", re: regexp.MustCompile(`\*\*(.+?)\*\*`), repl: "<strong>$1</strong>"},
	{Name: "italic", re: regexp.MustCompile(`\*(.+?)\*`), repl: "<em>$1</em>"},

	// 链接：负向后顾 (?<!!) 跳过图片语法，把 ![alt](url) 留给图片规则。
	// 标准库不支持环视，所以这一条使用 regexp2。
	{Name: "link", re2: regexp2.MustCompile(`(?<!!)\[(.+?)\]\((.+?)\)`, 0), repl: `<a href="$2">$1</a>`},

	// 图片
	{Name: "image", re: regexp.MustCompile(`!\[(.+?)\]\((.+?)\)`), repl: `<img src="$2" alt="$1">`},

	// 围栏代码块（跨行，语言标签变成 class 属性）
	{Name: "code-block", re: regexp.MustCompile("(?s)```(\\w*)\\n(.*?)\\n```"), repl: `<pre><code class="$1">$2</code></pre>`},

	// 行内代码
	{Name: "inline-code", re: regexp.MustCompile("`(.+?)`"), repl: "<code>$1</code>"},

	// 水平分割线（整行 3 个以上连字符）
	{Name: "horizontal-rule", re: regexp.MustCompile(`(?m)^---+$`), repl: "<hr>"},

	// 列表项（不生成外层 <ul>/<ol> 容器）
	{Name: "unordered-list", re: regexp.MustCompile(`(?m)^[\*\-]\s+(.+)$`), repl: "<li>$1</li>"},
	{Name: "ordered-list", re: regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`), repl: "<li>$1</li>"},

	// 段落包裹（最后一步：非空且不以标签开头的行包进 <p>）
	{Name: "paragraph", fn: wrapParagraphs},
}
