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

type ProductReq struct {
	ID int64 `json:"id"`
}

type RelatedProductsReq struct {
	ID    int64 `json:"id"`
	Limit int   `json:"limit"`
}

type SaveProductReq struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Price       int64  `json:"price"`
	SellPrice   int64  `json:"sellPrice"`
	CategoryID  int64  `json:"categoryId"`
	DisplayType int64  `json:"displayType"`
	DisplayHot  int64  `json:"displayHot"`
}

type SaveCategoryReq struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active int64  `json:"active"`
}

type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Price        int64  `json:"price"`
	SellPrice    int64  `json:"sellPrice"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName,omitempty"`
	DisplayType  int64  `json:"displayType"`
	DisplayHot   int64  `json:"displayHot"`
	Ctime        int64  `json:"ctime"`
}

type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active int64  `json:"active"`
}

type ProductListResp struct {
	Products []Product `json:"products"`
}

type CategoryListResp struct {
	Categories []Category `json:"categories"`
}
