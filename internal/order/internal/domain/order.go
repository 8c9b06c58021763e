// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusPending OrderStatus = 0
	StatusPaid    OrderStatus = 1
	StatusExpired OrderStatus = 2
)

const (
	PaymentMethodCash  = "cash"
	PaymentMethodVNPay = "vnpay"
)

type Order struct {
	ID int64
	SN string
	// BuyerID 为 0 表示未登录下单
	BuyerID       int64
	Name          string
	Address       string
	Phone         string
	Email         string
	Note          string
	PaymentMethod string
	CouponCode    string
	// Discount 和 FinalPrice 单位都是越南盾
	Discount   int64
	FinalPrice int64
	Status     OrderStatus
	// PaidAmount 网关回调确认的实付金额
	PaidAmount int64
	BankCode   string
	Items      []OrderItem
	Ctime      int64
	Utime      int64
}

type OrderItem struct {
	OrderID   int64
	ProductID int64
	// ProductName 和 ProductPrice 是下单时刻的商品快照
	ProductName  string
	ProductPrice int64
	Quantity     int64
	// UnitPrice 是下单方传入的单价，TotalPrice = Quantity * UnitPrice
	UnitPrice  int64
	TotalPrice int64
}

// ItemsTotal 所有订单项的小计之和
func (o Order) ItemsTotal() int64 {
	var total int64
	for _, it := range o.Items {
		total += it.TotalPrice
	}
	return total
}
