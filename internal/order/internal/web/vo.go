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

package web

type CreateOrderReq struct {
	RequestID     string     `json:"requestId"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	Number        string     `json:"number"`
	Email         string     `json:"email"`
	Note          string     `json:"note"`
	PaymentMethod string     `json:"paymentMethod"`
	Discount      int64      `json:"discount"`
	FinalPrice    int64      `json:"finalPrice"`
	CouponCode    string     `json:"couponCode"`
	Cart          []CartItem `json:"cart"`
}

type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
	Price     int64 `json:"price"`
}

type CreateOrderResp struct {
	PaymentURL string `json:"paymentUrl"`
}

type OrderSNReq struct {
	SN string `json:"sn"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type UpdateOrderReq struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Number  string `json:"number"`
	Email   string `json:"email"`
	Note    string `json:"note"`
}

type Order struct {
	ID            int64       `json:"id"`
	SN            string      `json:"sn"`
	Name          string      `json:"name"`
	Address       string      `json:"address"`
	Number        string      `json:"number"`
	Email         string      `json:"email"`
	Note          string      `json:"note"`
	PaymentMethod string      `json:"paymentMethod"`
	CouponCode    string      `json:"couponCode,omitempty"`
	Discount      int64       `json:"discount"`
	FinalPrice    int64       `json:"finalPrice"`
	Status        uint8       `json:"status"`
	PaidAmount    int64       `json:"paidAmount,omitempty"`
	Cart          []OrderItem `json:"cart"`
	Ctime         int64       `json:"ctime"`
}

type OrderItem struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice int64  `json:"productPrice"`
	Quantity     int64  `json:"quantity"`
	Price        int64  `json:"price"`
	TotalPrice   int64  `json:"totalPrice"`
}

type OrderListResp struct {
	Orders []Order `json:"orders"`
}
