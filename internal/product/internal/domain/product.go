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

const (
	DisplayOff = 2
	DisplayOn  = 1
)

type Product struct {
	ID   int64
	Name string
	// 静态资源文件名，完整 URL 由前端网关拼接
	Image string
	// 单位为越南盾，不带小数
	Price     int64
	SellPrice int64
	Category  Category
	// 1=上架 2=下架
	DisplayType int64
	// 1=热卖推荐位
	DisplayHot int64
	Ctime      int64
	Utime      int64
}

func (p Product) OnShelf() bool {
	return p.DisplayType == DisplayOn
}

type Category struct {
	ID     int64
	Name   string
	Active int64
	Ctime  int64
	Utime  int64
}
