package email

import (
	"bytes"
	"html/template"
)

// Invoice 是发给买家的收据内容，金额单位是越南盾。
type Invoice struct {
	OrderSN       string
	Name          string
	PaymentMethod string
	Lines         []InvoiceLine
	Discount      int64
	Total         int64
}

type InvoiceLine struct {
	ProductName string
	Quantity    int64
	UnitPrice   int64
	TotalPrice  int64
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<html>
<body>
<h2>Cảm ơn bạn đã đặt hàng, {{.Name}}!</h2>
<p>Mã đơn hàng: {{.OrderSN}}</p>
<p>Phương thức thanh toán: {{.PaymentMethod}}</p>
<table border="1" cellpadding="4" cellspacing="0">
  <tr><th>Sản phẩm</th><th>Số lượng</th><th>Đơn giá</th><th>Thành tiền</th></tr>
  {{range .Lines}}
  <tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td><td>{{.TotalPrice}}</td></tr>
  {{end}}
</table>
<p>Giảm giá: {{.Discount}}</p>
<p><b>Tổng cộng: {{.Total}}</b></p>
</body>
</html>`))

func (i Invoice) Render() ([]byte, error) {
	var buf bytes.Buffer
	err := invoiceTmpl.Execute(&buf, i)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
