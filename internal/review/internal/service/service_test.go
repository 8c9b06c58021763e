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

package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/greenshop/internal/product"
	productmocks "github.com/ecodeclub/greenshop/internal/product/mocks"
	"github.com/ecodeclub/greenshop/internal/review/internal/domain"
	"github.com/ecodeclub/greenshop/internal/review/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memoryReviewRepository struct {
	repository.ReviewRepository
	created []domain.Review
}

func (m *memoryReviewRepository) Create(_ context.Context, r domain.Review) (int64, error) {
	m.created = append(m.created, r)
	return int64(len(m.created)), nil
}

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		review  domain.Review
		mock    func(ctrl *gomock.Controller) product.Service
		wantErr error
	}{
		{
			name:   "正常创建且默认不展示",
			review: domain.Review{ProductID: 1, Name: "A", Email: "a@example.com", Content: "dep", Rate: 5, Active: true},
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(product.Product{ID: 1}, nil)
				return svc
			},
		},
		{
			name:   "评分越界",
			review: domain.Review{ProductID: 1, Rate: 6},
			mock: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidRate,
		},
		{
			name:   "评分为零",
			review: domain.Review{ProductID: 1, Rate: 0},
			mock: func(ctrl *gomock.Controller) product.Service {
				return productmocks.NewMockService(ctrl)
			},
			wantErr: ErrInvalidRate,
		},
		{
			name:   "商品不存在",
			review: domain.Review{ProductID: 404, Rate: 4},
			mock: func(ctrl *gomock.Controller) product.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(404)).
					Return(product.Product{}, product.ErrProductNotFound)
				return svc
			},
			wantErr: ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := &memoryReviewRepository{}
			svc := NewService(repo, tc.mock(ctrl))

			id, err := svc.Create(context.Background(), tc.review)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, id, int64(0))
			// 审核前不展示
			assert.False(t, repo.created[0].Active)
		})
	}
}
