package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/quest/internal/metrics"
	"github.com/aretw0/quest/pkg/adapters/memory"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/aretw0/quest/pkg/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// SlowStore simulates latency to provoke race conditions if locking is missing.
type SlowStore struct {
	*memory.Store
}

func (s SlowStore) Load(ctx context.Context, id string) (*domain.Adventure, error) {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Load(ctx, id)
}

func (s SlowStore) Save(ctx context.Context, adv *domain.Adventure) error {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Save(ctx, adv)
}

// FlakyStore fails every Save once armed.
type FlakyStore struct {
	ports.AdventureStore
	fail bool
}

func (f *FlakyStore) Save(ctx context.Context, adv *domain.Adventure) error {
	if f.fail {
		return errors.New("backend unavailable")
	}
	return f.AdventureStore.Save(ctx, adv)
}

func TestManager_CreateOpenList(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(memory.NewStore(), session.WithIDGenerator(sequence("adv")))

	sess, err := mgr.Create(ctx, "Mi Historia", "Una prueba")
	require.NoError(t, err)
	assert.Equal(t, "adv-1", sess.ID())

	start, ok := sess.CurrentNode()
	require.True(t, ok)
	assert.Equal(t, domain.StartNodeID, start.NodeID())

	all, err := mgr.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Mi Historia", all[0].Title)

	again, err := mgr.Open(ctx, "adv-1")
	require.NoError(t, err)
	assert.Same(t, sess, again, "open sessions are cached")
}

func TestManager_OpenMissing(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())

	_, err := mgr.Open(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrAdventureNotFound)
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(memory.NewStore(), session.WithIDGenerator(sequence("adv")))

	_, err := mgr.Create(ctx, "T", "")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, "adv-1"))

	_, err = mgr.Open(ctx, "adv-1")
	assert.ErrorIs(t, err, domain.ErrAdventureNotFound)
}

func TestManager_OpenRefreshesFromStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mgr := session.NewManager(store, session.WithIDGenerator(sequence("adv")))

	sess, err := mgr.Create(ctx, "Old", "")
	require.NoError(t, err)

	// Another replica saved a newer snapshot.
	adv := sess.Adventure().Clone()
	adv.Title = "New"
	require.NoError(t, store.Save(ctx, adv))

	again, err := mgr.Open(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, "New", again.Adventure().Title)
}

func TestManager_Locking(t *testing.T) {
	ctx := context.Background()
	mgr := session.NewManager(SlowStore{memory.NewStore()}, session.WithIDGenerator(sequence("n")))

	sess, err := mgr.Create(ctx, "Race", "")
	require.NoError(t, err)
	id := sess.ID()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := mgr.Do(ctx, id, func(ctx context.Context, s *session.Session) error {
				_, err := s.CreateDetached(ctx, domain.KindLoot)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	adv, err := mgr.Store().Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, adv.Nodes, 11, "no update may be lost")
}

// countingLocker records lock calls.
type countingLocker struct {
	mu       sync.Mutex
	locks    int
	unlocks  int
	failWith error
}

func (c *countingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failWith != nil {
		return nil, c.failWith
	}
	c.locks++
	return func(context.Context) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.unlocks++
		return nil
	}, nil
}

func TestManager_DistributedLocker(t *testing.T) {
	ctx := context.Background()
	locker := &countingLocker{}
	mgr := session.NewManager(memory.NewStore(), session.WithLocker(locker))

	_, err := mgr.Create(ctx, "T", "")
	require.NoError(t, err)
	assert.Equal(t, 1, locker.locks)
	assert.Equal(t, 1, locker.unlocks)

	locker.failWith = errors.New("redis down")
	err = mgr.WithLock(ctx, "x", func(context.Context) error { return nil })
	assert.ErrorContains(t, err, "failed to acquire distributed lock")
}

func TestManager_Metrics(t *testing.T) {
	ctx := context.Background()
	m := metrics.Nop()
	mgr := session.NewManager(memory.NewStore(), session.WithMetrics(m), session.WithIDGenerator(sequence("id")))

	sess, err := mgr.Create(ctx, "T", "")
	require.NoError(t, err)
	require.NoError(t, sess.EnterEdit(domain.StartNodeID))
	_, err = sess.AddChildAndLink(ctx, "seguir")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Edits.WithLabelValues("add_child")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NodeVisits.WithLabelValues(string(domain.KindDialogue))))
}

func TestSession_SaveFailureKeepsMutation(t *testing.T) {
	ctx := context.Background()
	store := &FlakyStore{AdventureStore: memory.NewStore()}
	mgr := session.NewManager(store, session.WithIDGenerator(sequence("id")))

	sess, err := mgr.Create(ctx, "T", "")
	require.NoError(t, err)

	store.fail = true
	id, err := sess.CreateDetached(ctx, domain.KindItem)
	assert.ErrorContains(t, err, "backend unavailable")
	assert.NotEmpty(t, id)

	_, ok := sess.Adventure().Node(id)
	assert.True(t, ok, "in-memory mutation survives a failed save")

	persisted, err := store.AdventureStore.Load(ctx, sess.ID())
	require.NoError(t, err)
	_, ok = persisted.Node(id)
	assert.False(t, ok)
}

func TestManager_FailedSaveSurvivesNextDo(t *testing.T) {
	ctx := context.Background()
	store := &FlakyStore{AdventureStore: memory.NewStore()}
	mgr := session.NewManager(store, session.WithIDGenerator(sequence("id")))

	sess, err := mgr.Create(ctx, "T", "")
	require.NoError(t, err)
	advID := sess.ID()

	store.fail = true
	var nodeID string
	err = mgr.Do(ctx, advID, func(ctx context.Context, s *session.Session) error {
		var err error
		nodeID, err = s.CreateDetached(ctx, domain.KindItem)
		return err
	})
	require.ErrorContains(t, err, "backend unavailable")

	err = mgr.Do(ctx, advID, func(ctx context.Context, s *session.Session) error {
		assert.True(t, s.Dirty())
		_, ok := s.Adventure().Node(nodeID)
		assert.True(t, ok, "unsaved node must not be reloaded away")
		return nil
	})
	require.NoError(t, err)

	store.fail = false
	err = mgr.Do(ctx, advID, func(ctx context.Context, s *session.Session) error {
		return s.Save(ctx)
	})
	require.NoError(t, err)

	persisted, err := store.Load(ctx, advID)
	require.NoError(t, err)
	_, ok := persisted.Node(nodeID)
	assert.True(t, ok)

	again, err := mgr.Open(ctx, advID)
	require.NoError(t, err)
	assert.False(t, again.Dirty())
}
