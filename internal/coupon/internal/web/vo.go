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

type CreateCouponReq struct {
	Code          string `json:"code"`
	DiscountValue int64  `json:"discountValue"`
	MaxUsage      int64  `json:"maxUsage"`
}

type CouponReq struct {
	ID int64 `json:"id"`
}

type UpdateCouponReq struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	DiscountValue int64  `json:"discountValue"`
	CurrentUsage  int64  `json:"currentUsage"`
	MaxUsage      int64  `json:"maxUsage"`
}

type Coupon struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	DiscountValue int64  `json:"discountValue"`
	CurrentUsage  int64  `json:"currentUsage"`
	MaxUsage      int64  `json:"maxUsage"`
	Ctime         int64  `json:"ctime"`
}

type CouponListResp struct {
	Coupons []Coupon `json:"coupons"`
}
