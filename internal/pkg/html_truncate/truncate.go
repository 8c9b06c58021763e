package html_truncate

import (
	"regexp"
	"strings"
)

type HTMLTruncator interface {
	Truncate(content string) string
}

// DefaultHTMLTruncator 按段落截取文章开头，用作列表页摘要
func DefaultHTMLTruncator() HTMLTruncator {
	return htmlTruncator{}
}

type htmlTruncator struct{}

func (t htmlTruncator) Truncate(content string) string {
	// 短文章只留一段，长文章留两段
	if t.ParagraphCount(content) <= 2 {
		return t.TruncateByParagraphs(content, 1)
	}
	return t.TruncateByParagraphs(content, 2)
}

// ParagraphCount 统计非空段落数
func (t htmlTruncator) ParagraphCount(content string) int {
	re := regexp.MustCompile(`(<p>.*?</p>)`)
	matches := re.FindAllStringSubmatchIndex(content, -1)

	pCount := 0
	for _, match := range matches {
		pContent := content[match[0]:match[1]]
		textRe := regexp.MustCompile(`<p>(.*?)</p>`)
		textMatch := textRe.FindStringSubmatch(pContent)
		// 空段落不计数
		if len(textMatch) > 1 && strings.TrimSpace(textMatch[1]) != "" {
			pCount++
		}
	}
	return pCount
}

// TruncateByParagraphs 截取前 number 个非空段落，保留段落之间夹着的其它标签
func (htmlTruncator) TruncateByParagraphs(content string, number int) string {
	if number <= 0 {
		return ""
	}

	re := regexp.MustCompile(`(<p>.*?</p>)`)
	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content
	}

	pCount := 0
	for _, match := range matches {
		pContent := content[match[0]:match[1]]
		textRe := regexp.MustCompile(`<p>(.*?)</p>`)
		textMatch := textRe.FindStringSubmatch(pContent)
		if len(textMatch) > 1 && strings.TrimSpace(textMatch[1]) != "" {
			pCount++
			if pCount == number {
				return content[:match[1]]
			}
		}
	}
	// 有效段落不足 number，整篇返回
	return content
}
