package cache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/trueform/compiler/cache"
	"github.com/trueform/compiler/ir"
	"github.com/trueform/compiler/kernel"
)

type CacheSuite struct {
	suite.Suite
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) TestHashIsDeterministic() {
	part := &ir.Part{ID: "p1", Features: []ir.Feature{{ID: "f1", Kind: ir.KindDatumPlane}}}
	k1, err := cache.PartBuildKey(part, ir.LengthMM, nil, kernel.Capabilities{Name: "kernelfake", Version: "1.0.0"})
	require.NoError(s.T(), err)
	k2, err := cache.PartBuildKey(part, ir.LengthMM, nil, kernel.Capabilities{Name: "kernelfake", Version: "1.0.0"})
	require.NoError(s.T(), err)
	require.Equal(s.T(), k1, k2)
}

func (s *CacheSuite) TestHashChangesOnFeatureChange() {
	base := &ir.Part{ID: "p1", Features: []ir.Feature{{ID: "f1", Kind: ir.KindDatumPlane}}}
	changed := &ir.Part{ID: "p1", Features: []ir.Feature{{ID: "f1", Kind: ir.KindDatumAxis}}}
	k1, _ := cache.PartBuildKey(base, ir.LengthMM, nil, kernel.Capabilities{Name: "kernelfake", Version: "1.0.0"})
	k2, _ := cache.PartBuildKey(changed, ir.LengthMM, nil, kernel.Capabilities{Name: "kernelfake", Version: "1.0.0"})
	require.NotEqual(s.T(), k1, k2)
}

func (s *CacheSuite) TestStoreHitMissEvict() {
	st := cache.NewStore(2)
	st.Put(1, "a")
	st.Put(2, "b")
	v, ok := st.Get(1)
	require.True(s.T(), ok)
	require.Equal(s.T(), "a", v)

	st.Put(3, "c") // evicts 2 (least recently used after touching 1)
	_, ok = st.Get(2)
	require.False(s.T(), ok)
	require.Equal(s.T(), 2, st.Len())
}

func (s *CacheSuite) TestGetOrComputeCoalesces() {
	st := cache.NewStore(0)
	var calls int32
	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			v, err := st.GetOrCompute(42, func() (any, error) {
				atomic.AddInt32(&calls, 1)
				time.Sleep(5 * time.Millisecond)
				return "computed", nil
			})
			require.NoError(s.T(), err)
			results[idx] = v
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(s.T(), "computed", r)
	}
	require.Equal(s.T(), int32(1), atomic.LoadInt32(&calls))
}

func (s *CacheSuite) TestGetOrComputePropagatesError() {
	st := cache.NewStore(0)
	boom := errors.New("boom")
	_, err := st.GetOrCompute(1, func() (any, error) { return nil, boom })
	require.ErrorIs(s.T(), err, boom)
	require.Equal(s.T(), 0, st.Len())
}

func (s *CacheSuite) TestSessionLifecycle() {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ss := cache.NewSessionStore(time.Minute, 1)

	sess, err := ss.Create(now)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), sess.ID)

	_, err = ss.Create(now)
	require.True(s.T(), ir.AsCode(err, ir.CodeQuotaExceeded))

	got, err := ss.Get(sess.ID, now.Add(30*time.Second))
	require.NoError(s.T(), err)
	require.Equal(s.T(), sess.ID, got.ID)

	_, err = ss.Get(sess.ID, now.Add(2*time.Minute))
	require.True(s.T(), ir.AsCode(err, ir.CodeBuildSessionNotFound))
}

func (s *CacheSuite) TestSweepRemovesExpired() {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ss := cache.NewSessionStore(time.Second, 0)
	_, err := ss.Create(now)
	require.NoError(s.T(), err)
	removed := ss.Sweep(now.Add(2 * time.Second))
	require.Equal(s.T(), 1, removed)
}
