package event

const InvoiceEventName = "invoice_events"

// InvoiceEvent 在订单确认收款之后发出，现金单在创建时、网关单在回调完成时。
type InvoiceEvent struct {
	OrderSN       string        `json:"orderSN"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PaymentMethod string        `json:"paymentMethod"`
	Discount      int64         `json:"discount"`
	FinalPrice    int64         `json:"finalPrice"`
	Items         []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
}
