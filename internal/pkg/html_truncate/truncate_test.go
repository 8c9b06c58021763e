package html_truncate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateByParagraphs(t *testing.T) {
	testcases := []struct {
		name        string
		content     string
		number      int
		wantContent string
	}{
		{
			name:        "截取2段",
			content:     `<p>Cây trầu bà là loại cây cảnh dễ trồng.</p><p>Cây ưa bóng râm và đất ẩm.</p><p>Tưới nước hai lần mỗi tuần.</p>`,
			number:      2,
			wantContent: `<p>Cây trầu bà là loại cây cảnh dễ trồng.</p><p>Cây ưa bóng râm và đất ẩm.</p>`,
		},
		{
			name:        "超出拥有的段落",
			content:     `<p>Đoạn 1</p><p>Đoạn 2</p>`,
			number:      5,
			wantContent: `<p>Đoạn 1</p><p>Đoạn 2</p>`,
		},
		{
			name:        "0个段落",
			content:     `<p>Đoạn 1</p><p>Đoạn 2</p>`,
			number:      0,
			wantContent: ``,
		},
		{
			name:        "空字符串",
			content:     ``,
			number:      0,
			wantContent: ``,
		},
		{
			name:        "空段落不计数",
			content:     `<p>Hướng dẫn chăm sóc cây xương rồng.</p><p></p><p>Xương rồng cần nhiều ánh sáng.</p>`,
			number:      2,
			wantContent: `<p>Hướng dẫn chăm sóc cây xương rồng.</p><p></p><p>Xương rồng cần nhiều ánh sáng.</p>`,
		},
		{
			name:        "保留段落之间的列表",
			content:     `<p>Ba loại cây lọc không khí tốt nhất:</p><ul><li>Lưỡi hổ</li><li>Trầu bà</li><li>Lan ý</li></ul><p>Tất cả đều có bán tại cửa hàng.</p>`,
			number:      2,
			wantContent: `<p>Ba loại cây lọc không khí tốt nhất:</p><ul><li>Lưỡi hổ</li><li>Trầu bà</li><li>Lan ý</li></ul><p>Tất cả đều có bán tại cửa hàng.</p>`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			h := htmlTruncator{}
			gotContent := h.TruncateByParagraphs(tc.content, tc.number)
			assert.Equal(t, tc.wantContent, gotContent)
		})
	}
}

func TestParagraphCount(t *testing.T) {
	testcases := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "3个段落",
			content: `<p>Đoạn 1</p><p>Đoạn 2</p><p>Đoạn 3</p>`,
			want:    3,
		},
		{
			name:    "2个段落和1个空段落",
			content: `<p>Đoạn 1</p><p></p><p>Đoạn 2</p>`,
			want:    2,
		},
		{
			name:    "0个段落",
			content: ``,
			want:    0,
		},
		{
			name:    "只有空段落",
			content: `<p></p><p></p>`,
			want:    0,
		},
		{
			name:    "包含其他标签",
			content: `<p>Đoạn 1</p><div>Nội dung khác</div><p>Đoạn 2</p>`,
			want:    2,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			h := htmlTruncator{}
			got := h.ParagraphCount(tc.content)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	testcases := []struct {
		name        string
		content     string
		wantContent string
	}{
		{
			name:        "短文章只留1段",
			content:     `<p>Đoạn 1</p><p>Đoạn 2</p>`,
			wantContent: `<p>Đoạn 1</p>`,
		},
		{
			name:        "3段留2段",
			content:     `<p>Đoạn 1</p><p>Đoạn 2</p><p>Đoạn 3</p>`,
			wantContent: `<p>Đoạn 1</p><p>Đoạn 2</p>`,
		},
		{
			name:        "长文章留2段",
			content:     `<p>Đoạn 1</p><p>Đoạn 2</p><p>Đoạn 3</p><p>Đoạn 4</p><p>Đoạn 5</p>`,
			wantContent: `<p>Đoạn 1</p><p>Đoạn 2</p>`,
		},
		{
			name:        "没有段落",
			content:     ``,
			wantContent: ``,
		},
		{
			name:        "空段落不影响计数",
			content:     `<p>Đoạn 1</p><p></p><p>Đoạn 2</p>`,
			wantContent: `<p>Đoạn 1</p>`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			h := htmlTruncator{}
			gotContent := h.Truncate(tc.content)
			assert.Equal(t, tc.wantContent, gotContent)
		})
	}
}
