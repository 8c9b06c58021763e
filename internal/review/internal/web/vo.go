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

type ReviewReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ProductReviewsReq struct {
	ProductID int64 `json:"productId"`
}

type CreateReviewReq struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	Rate      int    `json:"rate"`
}

type UpdateReviewReq struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	Rate    int    `json:"rate"`
	Active  bool   `json:"active"`
}

type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Content   string `json:"content"`
	Rate      int    `json:"rate"`
	Active    bool   `json:"active"`
	Ctime     int64  `json:"ctime"`
}

type ReviewListResp struct {
	Reviews []Review `json:"reviews"`
}
