package plugin

import (
	"github.com/nerdneilsfield/go-mdkit/pkg/markdown"
)

// Markdown 插件支持的动作名。
const (
	ActionToHTML          = "to-html"
	ActionExtractLinks    = "extract-links"
	ActionExtractHeadings = "extract-headings"
	ActionWordCount       = "word-count"
)

// markdownActions 的顺序即对外公布顺序。
var markdownActions = []string{
	ActionToHTML,
	ActionExtractLinks,
	ActionExtractHeadings,
	ActionWordCount,
}

// MarkdownPlugin 提供 Markdown 处理能力的插件。
type MarkdownPlugin struct{}

// NewMarkdownPlugin 创建 Markdown 插件。
func NewMarkdownPlugin() *MarkdownPlugin {
	return &MarkdownPlugin{}
}

// Info 返回插件元数据。
func (p *MarkdownPlugin) Info() Info {
	return Info{
		Name:    "plugin-go-markdown",
		Version: "1.0.0",
		Actions: markdownActions,
	}
}

// Call 执行一个 Markdown 动作。
func (p *MarkdownPlugin) Call(action string, input []byte) []byte {
	return safeCall(func() []byte {
		data := subjectText(input)

		switch action {
		case ActionToHTML:
			html := markdown.Render(data)
			return marshalResponse(RenderResponse{
				HTML:         html,
				InputLength:  runeLen(data),
				OutputLength: runeLen(html),
			})

		case ActionExtractLinks:
			links := markdown.ExtractLinks(data)
			return marshalResponse(LinksResponse{Links: links, Count: len(links)})

		case ActionExtractHeadings:
			headings := markdown.ExtractHeadings(data)
			return marshalResponse(HeadingsResponse{Headings: headings, Count: len(headings)})

		case ActionWordCount:
			return marshalResponse(markdown.CountStats(data))

		default:
			return errorResponse(unknownActionMessage(action, markdownActions))
		}
	})
}

// Qualify Markdown 插件不提供限定符。
func (p *MarkdownPlugin) Qualify(name string, input []byte) []byte {
	return errorResponse("plugin-go-markdown provides no qualifiers")
}
