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

type Coupon struct {
	ID int64
	// 大小写敏感
	Code          string
	DiscountValue int64
	CurrentUsage  int64
	MaxUsage      int64
	Ctime         int64
	Utime         int64
}

// Usable 还有剩余使用次数
func (c Coupon) Usable() bool {
	return c.CurrentUsage < c.MaxUsage
}
