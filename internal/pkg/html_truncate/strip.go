package html_truncate

import (
	"regexp"
	"strings"
)

// StripHTML 把文章 HTML 转成纯文本摘要，超链接整体去除
func StripHTML(content string) string {
	// 链接连同链接文字一起去掉
	content = processLinks(content)

	// 在去标签之前先处理结构标签，保留列表和分段
	content = processStructure(content)

	// 去除所有剩余的HTML标签
	re := regexp.MustCompile(`<[^>]*>`)
	content = re.ReplaceAllString(content, "")

	content = processEntities(content)

	return processWhitespace(content)
}

func processLinks(content string) string {
	re := regexp.MustCompile(`<a\s+[^>]*>.*?</a>`)
	return re.ReplaceAllString(content, "")
}

// processEntities 处理常见的HTML实体
func processEntities(content string) string {
	replacements := map[string]string{
		"&amp;":  "&",
		"&lt;":   "<",
		"&gt;":   ">",
		"&quot;": "\"",
		"&#39;":  "'",
		"&nbsp;": " ",
	}

	for entity, replacement := range replacements {
		content = strings.ReplaceAll(content, entity, replacement)
	}

	return content
}

// processStructure 列表项转成项目符号，段落和标题转成换行或空格
func processStructure(content string) string {
	content = strings.ReplaceAll(content, "<li>", "\n• ")
	content = strings.ReplaceAll(content, "</li>", "")

	content = strings.ReplaceAll(content, "<ul>", "")
	content = strings.ReplaceAll(content, "</ul>", "")
	content = strings.ReplaceAll(content, "<ol>", "")
	content = strings.ReplaceAll(content, "</ol>", "")

	content = strings.ReplaceAll(content, "<p>", "")
	content = strings.ReplaceAll(content, "</p>", "\n")

	for i := 1; i <= 6; i++ {
		openTag := "<h" + string(rune('0'+i)) + ">"
		closeTag := "</h" + string(rune('0'+i)) + ">"
		content = strings.ReplaceAll(content, openTag, "")
		content = strings.ReplaceAll(content, closeTag, " ")
	}

	content = strings.ReplaceAll(content, "<blockquote>", "")
	content = strings.ReplaceAll(content, "</blockquote>", "")

	return content
}

func processWhitespace(content string) string {
	// 制表符和连续空格压成一个空格
	re := regexp.MustCompile(`[ \t]+`)
	content = re.ReplaceAllString(content, " ")

	re = regexp.MustCompile(`\n{3,}`)
	content = re.ReplaceAllString(content, "\n\n")

	// 没有列表项就不需要保留换行
	if !strings.Contains(content, "• ") {
		re = regexp.MustCompile(`\s+`)
		content = re.ReplaceAllString(content, " ")
	}

	return strings.TrimSpace(content)
}
