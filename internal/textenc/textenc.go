// Package textenc 处理输入文件的字符编码：
// 检测 BOM、解码 UTF-16，并对常见传统编码做启发式回退，
// 保证后续文本处理拿到的是合法的 UTF-8。
package textenc

import (
	"bytes"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode 把原始字节解码为 UTF-8 文本。
// 解码从不失败：所有启发式都不命中时原样返回。
func Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// UTF-8 BOM
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return string(data[3:])
	}

	if utf8.Valid(data) {
		return string(data)
	}

	// UTF-16 BOM
	if len(data) >= 2 {
		if data[0] == 0xFF && data[1] == 0xFE {
			if res, ok := decodeWith(data[2:], xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM)); ok {
				return res
			}
		} else if data[0] == 0xFE && data[1] == 0xFF {
			if res, ok := decodeWith(data[2:], xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM)); ok {
				return res
			}
		}
	}

	// 常见编码回退
	fallbacks := []encoding.Encoding{
		simplifiedchinese.GBK,
		simplifiedchinese.GB18030,
		charmap.Windows1252,
		charmap.ISO8859_1,
	}
	for _, enc := range fallbacks {
		if res, ok := decodeWith(data, enc); ok && isReasonableText(res) {
			return res
		}
	}

	return string(data)
}

// ReadFile 读取文件并解码为 UTF-8 文本。
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(data), nil
}

func decodeWith(data []byte, enc encoding.Encoding) (string, bool) {
	res, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil || !utf8.Valid(res) {
		return "", false
	}
	return string(res), true
}

// isReasonableText 可打印字符超过 90% 认为解码结果合理。
func isReasonableText(text string) bool {
	if len(text) == 0 {
		return false
	}
	printable := 0
	total := 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}
	return float64(printable)/float64(total) > 0.9
}
