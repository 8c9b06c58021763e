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

type Review struct {
	ID        int64
	ProductID int64
	Name      string
	Email     string
	Content   string
	// Rate 取值 1 到 5
	Rate int
	// Active 审核通过才对外展示
	Active bool
	Ctime  int64
	Utime  int64
}

func (r Review) ValidRate() bool {
	return r.Rate >= 1 && r.Rate <= 5
}
