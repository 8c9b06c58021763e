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

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dedupeCache 只实现去重用到的 SetNX，其余方法不会被调用
type dedupeCache struct {
	ecache.Cache
	keys   map[string]time.Duration
	setErr error
}

func newDedupeCache() *dedupeCache {
	return &dedupeCache{keys: map[string]time.Duration{}}
}

func (c *dedupeCache) SetNX(ctx context.Context, key string, val any, expiration time.Duration) (bool, error) {
	if c.setErr != nil {
		return false, c.setErr
	}
	if _, ok := c.keys[key]; ok {
		return false, nil
	}
	c.keys[key] = expiration
	return true, nil
}

func TestHandler_CheckRequestID(t *testing.T) {
	t.Run("首次请求放行并带过期时间写入", func(t *testing.T) {
		cache := newDedupeCache()
		h := NewHandler(nil, nil, nil, cache)

		err := h.checkRequestID(context.Background(), "req-abc")

		require.NoError(t, err)
		ttl, ok := cache.keys[fmt.Sprintf("order:create:%s", "req-abc")]
		require.True(t, ok)
		assert.Equal(t, requestIDExpiration, ttl)
	})

	t.Run("重复requestId被拦截", func(t *testing.T) {
		cache := newDedupeCache()
		h := NewHandler(nil, nil, nil, cache)

		require.NoError(t, h.checkRequestID(context.Background(), "req-abc"))
		err := h.checkRequestID(context.Background(), "req-abc")

		assert.Error(t, err)
	})

	t.Run("缓存故障放行下单", func(t *testing.T) {
		cache := newDedupeCache()
		cache.setErr = errors.New("redis 连接超时")
		h := NewHandler(nil, nil, nil, cache)

		err := h.checkRequestID(context.Background(), "req-abc")

		assert.NoError(t, err)
	})

	t.Run("不带requestId直接放行", func(t *testing.T) {
		cache := newDedupeCache()
		h := NewHandler(nil, nil, nil, cache)

		err := h.checkRequestID(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, cache.keys)
	})
}
