package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"dms-server/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.It("should store and retrieve a value", func() {
		gomega.Expect(cacheInstance.Set(ctx, "form:1", []byte("payload"), 0)).To(gomega.BeTrue())

		value, found := cacheInstance.Get(ctx, "form:1")
		gomega.Expect(found).To(gomega.BeTrue())
		gomega.Expect(value).To(gomega.Equal([]byte("payload")))
	})

	ginkgo.It("should expire values after their TTL", func() {
		gomega.Expect(cacheInstance.Set(ctx, "short", "lived", 50*time.Millisecond)).To(gomega.BeTrue())

		gomega.Eventually(func() bool {
			_, found := cacheInstance.Get(ctx, "short")
			return found
		}).WithTimeout(2 * time.Second).WithPolling(20 * time.Millisecond).Should(gomega.BeFalse())
	})

	ginkgo.It("should delete values", func() {
		cacheInstance.Set(ctx, "gone", 1, 0)
		cacheInstance.Delete(ctx, "gone")

		_, found := cacheInstance.Get(ctx, "gone")
		gomega.Expect(found).To(gomega.BeFalse())
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should load a missing key once", func() {
			var calls atomic.Int32
			loader := func() (any, error) {
				calls.Add(1)
				time.Sleep(10 * time.Millisecond)
				return "loaded", nil
			}

			var wg sync.WaitGroup
			for range 10 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer ginkgo.GinkgoRecover()
					value, err := cacheInstance.GetOrSet(ctx, "hot", time.Minute, loader)
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					gomega.Expect(value).To(gomega.Equal("loaded"))
				}()
			}
			wg.Wait()

			gomega.Expect(calls.Load()).To(gomega.BeNumerically("<=", 2))
		})

		ginkgo.It("should not cache loader errors", func() {
			_, err := cacheInstance.GetOrSet(ctx, "broken", time.Minute, func() (any, error) {
				return nil, errors.New("boom")
			})
			gomega.Expect(err).To(gomega.MatchError("boom"))

			_, found := cacheInstance.Get(ctx, "broken")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("should return the context error when cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := cacheInstance.GetOrSet(cancelled, "any", time.Minute, func() (any, error) {
				return "never", nil
			})
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
		})
	})

	ginkgo.It("should not enumerate keys", func() {
		keys, err := cacheInstance.Keys(ctx, "*")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(keys).To(gomega.BeEmpty())
	})
})
