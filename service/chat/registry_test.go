package chat

import (
	"strconv"
	"sync"
	"testing"

	charmodel "DreamMMO/module/character/model"
)

func testClient(userID int64) *Client {
	ch := &charmodel.Character{ID: userID, UserID: userID, Name: "hero" + strconv.FormatInt(userID, 10)}
	return NewClient("conn-"+strconv.FormatInt(userID, 10), userID, ch, nil)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	c := testClient(1)
	if evicted := r.Register(c); evicted != nil {
		t.Fatalf("unexpected eviction: %v", evicted.ConnID)
	}
	got, ok := r.Get(1)
	if !ok || got != c {
		t.Fatal("Get did not return registered client")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestRegistryDuplicateEvicts(t *testing.T) {
	r := NewRegistry()
	old := testClient(1)
	r.Register(old)

	fresh := testClient(1)
	evicted := r.Register(fresh)
	if evicted != old {
		t.Fatal("expected old client back on duplicate register")
	}
	if got, _ := r.Get(1); got != fresh {
		t.Error("registry should point at the new client")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestRegistryUnregisterClientIdentity(t *testing.T) {
	r := NewRegistry()
	old := testClient(1)
	r.Register(old)
	fresh := testClient(1)
	r.Register(fresh)

	// 被顶号的旧连接收尾时不能把新连接摘掉
	if r.UnregisterClient(old) {
		t.Error("stale client should not unregister")
	}
	if got, ok := r.Get(1); !ok || got != fresh {
		t.Fatal("fresh client lost after stale unregister")
	}
	if !r.UnregisterClient(fresh) {
		t.Error("current client should unregister")
	}
	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0", r.Count())
	}
}

func TestRegistryUnregisterUnknownNoop(t *testing.T) {
	r := NewRegistry()
	r.Unregister(99)
	if r.UnregisterClient(testClient(99)) {
		t.Error("unknown client should be a no-op")
	}
}

func TestRegistrySnapshotStable(t *testing.T) {
	r := NewRegistry()
	for i := int64(1); i <= 10; i++ {
		r.Register(testClient(i))
	}
	snap := r.Snapshot()
	if len(snap) != 10 {
		t.Fatalf("snapshot len = %d, want 10", len(snap))
	}
	// 快照拿到后增删在线表，不影响已取的切片
	r.Unregister(3)
	r.Register(testClient(11))
	if len(snap) != 10 {
		t.Errorf("snapshot mutated, len = %d", len(snap))
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			for j := int64(0); j < 100; j++ {
				id := base*1000 + j
				r.Register(testClient(id))
				r.Snapshot()
				r.Unregister(id)
			}
		}(int64(i))
	}
	wg.Wait()
	if r.Count() != 0 {
		t.Errorf("Count = %d, want 0 after churn", r.Count())
	}
}
