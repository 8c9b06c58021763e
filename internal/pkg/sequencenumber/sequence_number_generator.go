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

package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

// Generator 生成订单流水号
type Generator struct {
	clock            func() time.Time
	shortUUIDGenFunc func() string
}

// NewGeneratorWith 允许注入时钟和随机段，方便测试
func NewGeneratorWith(clock func() time.Time, uuidGen func() string) *Generator {
	return &Generator{
		clock:            clock,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, func() string { return shortuuid.New() })
}

// Generate 使用买家ID生成流水号，固定 32 位：
// GS + 下单日期(yyyyMMdd) + 买家ID后四位 + 随机段补齐
func (s *Generator) Generate(id int64) (string, error) {
	day := s.clock().Format("20060102")
	lastFour := fmt.Sprintf("%04d", id%10000)
	sn := "GS" + day + lastFour + s.shortUUIDGenFunc()
	if len(sn) < snLength {
		return "", fmt.Errorf("随机段过短: %s", sn)
	}
	return sn[:snLength], nil
}
