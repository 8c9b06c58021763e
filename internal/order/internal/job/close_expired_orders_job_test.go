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

package job

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/greenshop/internal/order/internal/domain"
	ordermocks "github.com/ecodeclub/greenshop/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCloseExpiredOrdersJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := ordermocks.NewMockService(ctrl)

	// 截止时间与支付链接的 15 分钟有效期对齐，外加 10 秒冗余
	const minute = 15
	var gotDeadline int64
	svc.EXPECT().ListExpiredOrders(gomock.Any(), 0, 100, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ int, deadline int64) ([]domain.Order, int64, error) {
			gotDeadline = deadline
			return []domain.Order{{ID: 1}, {ID: 2}}, 2, nil
		})
	svc.EXPECT().CloseExpiredOrders(gomock.Any(), []int64{1, 2}).Return(nil)

	j := NewCloseExpiredOrdersJob(svc, 100, minute, 10*time.Second)
	before := time.Now().Add(-minute*time.Minute + 10*time.Second).UnixMilli()
	require.NoError(t, j.Run())
	after := time.Now().Add(-minute*time.Minute + 10*time.Second).UnixMilli()

	assert.GreaterOrEqual(t, gotDeadline, before)
	assert.LessOrEqual(t, gotDeadline, after)
}
