package html_truncate

import (
	"testing"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "超链接",
			input:    `<p>Xem thêm các mẫu chậu mới tại <a href="https://greenshop.vn/san-pham" rel="noopener noreferrer" target="_blank">trang sản phẩm</a> của chúng tôi.</p>`,
			expected: "Xem thêm các mẫu chậu mới tại của chúng tôi.",
		},
		{
			name:     "段落和列表",
			input:    `<p>Cách chăm sóc sen đá cho người mới:</p><ul><li>Tưới nước một lần mỗi tuần, tránh để đọng nước trong chậu;</li><li>Đặt cây ở nơi có nắng nhẹ buổi sáng.</li></ul>`,
			expected: "Cách chăm sóc sen đá cho người mới:\n\n• Tưới nước một lần mỗi tuần, tránh để đọng nước trong chậu;\n• Đặt cây ở nơi có nắng nhẹ buổi sáng.",
		},
		{
			name:     "嵌套列表",
			input:    `<ul><li>Cây trong nhà nên chọn theo ánh sáng:<ul><li>Phòng ít sáng chọn lưỡi hổ hoặc trầu bà</li><li>Ban công nhiều nắng chọn sen đá, xương rồng</li></ul></li><li>Đất trồng: dùng đất tơi xốp, thoát nước tốt.</li></ul>`,
			expected: "• Cây trong nhà nên chọn theo ánh sáng:\n• Phòng ít sáng chọn lưỡi hổ hoặc trầu bà\n• Ban công nhiều nắng chọn sen đá, xương rồng\n• Đất trồng: dùng đất tơi xốp, thoát nước tốt.",
		},
		{
			name:     "标题",
			input:    `<h3>Ưu đãi tháng này</h3><p>Giảm 20% cho mọi đơn hàng chậu gốm.</p>`,
			expected: "Ưu đãi tháng này Giảm 20% cho mọi đơn hàng chậu gốm.",
		},
		{
			name:     "块引用",
			input:    `<blockquote>Một chậu cây nhỏ cũng đủ làm bừng sáng cả góc làm việc.</blockquote>`,
			expected: "Một chậu cây nhỏ cũng đủ làm bừng sáng cả góc làm việc.",
		},
		{
			name:     "图片",
			input:    `<p><img src="https://cdn.greenshop.vn/blog/c523c431-16d5-44b3-873a-dcf0bbb452cb" style="width: 50%; display: block; margin: auto;"></p>`,
			expected: "",
		},
		{
			name:     "HTML实体",
			input:    `<p>Combo &quot;chậu &amp; đất trồng&quot; đang có sẵn.</p>`,
			expected: "Combo \"chậu & đất trồng\" đang có sẵn.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripHTML(tt.input)
			if result != tt.expected {
				t.Errorf("StripHTML() = %v, want %v", result, tt.expected)
			}
		})
	}
}
