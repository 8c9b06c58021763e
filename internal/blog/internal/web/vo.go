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

type BlogReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type SaveBlogReq struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Image         string `json:"image"`
	Content       string `json:"content"`
	DisplayHot    bool   `json:"displayHot"`
	DisplayBanner bool   `json:"displayBanner"`
}

type Blog struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	// 列表接口只返回摘要，详情接口才带全文
	Content       string `json:"content,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	DisplayHot    bool   `json:"displayHot"`
	DisplayBanner bool   `json:"displayBanner"`
	Ctime         int64  `json:"ctime"`
}

type BlogListResp struct {
	Blogs []Blog `json:"blogs"`
}
