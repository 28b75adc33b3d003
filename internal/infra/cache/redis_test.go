package cache_test

import (
	"context"
	"errors"
	"time"

	"dms-server/internal/infra/cache"
	mockcache "dms-server/test/unit/doubles/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("RedisCache", func() {
	var (
		redisCache      *cache.RedisCache
		mockCacheClient *mockcache.MockCacheClient
		ctrl            *gomock.Controller
		ctx             context.Context
	)

	ginkgo.BeforeEach(func() {
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		mockCacheClient = mockcache.NewMockCacheClient(ctrl)
		redisCache = cache.NewRedisCacheWithClient(mockCacheClient, nil)
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.It("should store byte slices unchanged", func() {
		mockCacheClient.EXPECT().
			Set(gomock.Any(), "form:1", []byte("raw"), time.Minute).
			Return(redis.NewStatusCmd(ctx, "OK"))

		gomega.Expect(redisCache.Set(ctx, "form:1", []byte("raw"), time.Minute)).To(gomega.BeTrue())
	})

	ginkgo.It("should msgpack encode other values", func() {
		expected, err := msgpack.Marshal(map[string]string{"name": "survey"})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())

		mockCacheClient.EXPECT().
			Set(gomock.Any(), "form:2", expected, time.Duration(0)).
			Return(redis.NewStatusCmd(ctx, "OK"))

		gomega.Expect(redisCache.Set(ctx, "form:2", map[string]string{"name": "survey"}, 0)).To(gomega.BeTrue())
	})

	ginkgo.It("should report a failed write", func() {
		cmd := redis.NewStatusCmd(ctx)
		cmd.SetErr(errors.New("connection refused"))
		mockCacheClient.EXPECT().Set(gomock.Any(), "k", gomock.Any(), gomock.Any()).Return(cmd)

		gomega.Expect(redisCache.Set(ctx, "k", []byte("v"), 0)).To(gomega.BeFalse())
	})

	ginkgo.It("should return stored bytes", func() {
		cmd := redis.NewStringCmd(ctx, "get", "form:1")
		cmd.SetVal("raw")
		mockCacheClient.EXPECT().Get(gomock.Any(), "form:1").Return(cmd)

		value, found := redisCache.Get(ctx, "form:1")
		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal([]byte("raw")))
	})

	ginkgo.It("should treat redis.Nil as a miss", func() {
		cmd := redis.NewStringCmd(ctx, "get", "missing")
		cmd.SetErr(redis.Nil)
		mockCacheClient.EXPECT().Get(gomock.Any(), "missing").Return(cmd)

		_, found := redisCache.Get(ctx, "missing")
		gomega.Expect(found).To(gomega.BeFalse())
	})

	ginkgo.It("should load and store a missing key", func() {
		miss := redis.NewStringCmd(ctx, "get", "form:3")
		miss.SetErr(redis.Nil)
		mockCacheClient.EXPECT().Get(gomock.Any(), "form:3").Return(miss)
		mockCacheClient.EXPECT().
			Set(gomock.Any(), "form:3", []byte("loaded"), time.Minute).
			Return(redis.NewStatusCmd(ctx, "OK"))

		value, err := redisCache.GetOrSet(ctx, "form:3", time.Minute, func() (any, error) {
			return []byte("loaded"), nil
		})
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(value).To(gomega.Equal([]byte("loaded")))
	})

	ginkgo.It("should delete keys", func() {
		mockCacheClient.EXPECT().Del(gomock.Any(), "form:1").Return(redis.NewIntCmd(ctx, 1))
		redisCache.Delete(ctx, "form:1")
	})

	ginkgo.It("should list keys", func() {
		cmd := redis.NewStringSliceCmd(ctx, "keys", "form:*")
		cmd.SetVal([]string{"form:1", "form:2"})
		mockCacheClient.EXPECT().Keys(gomock.Any(), "form:*").Return(cmd)

		keys, err := redisCache.Keys(ctx, "form:*")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(keys).To(gomega.ConsistOf("form:1", "form:2"))
	})
})
