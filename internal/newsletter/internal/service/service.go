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

	"github.com/ecodeclub/greenshop/internal/newsletter/internal/domain"
	"github.com/ecodeclub/greenshop/internal/newsletter/internal/repository"
)

var (
	ErrSubscriptionNotFound = repository.ErrSubscriptionNotFound
	ErrDuplicateEmail       = repository.ErrDuplicateEmail
)

//go:generate mockgen -source=./service.go -package=newslettermocks -destination=../../mocks/newsletter.mock.go Service
type Service interface {
	Subscribe(ctx context.Context, s domain.Subscription) (int64, error)
	Update(ctx context.Context, s domain.Subscription) error
	Delete(ctx context.Context, id int64) error
	ListPending(ctx context.Context) ([]domain.Subscription, error)
}

type service struct {
	repo repository.SubscriptionRepository
}

func NewService(repo repository.SubscriptionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(ctx context.Context, sub domain.Subscription) (int64, error) {
	sub.Done = false
	return s.repo.Create(ctx, sub)
}

func (s *service) Update(ctx context.Context, sub domain.Subscription) error {
	return s.repo.Update(ctx, sub)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListPending(ctx context.Context) ([]domain.Subscription, error) {
	return s.repo.ListPending(ctx)
}
