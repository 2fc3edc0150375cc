package analytics

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestMemoComputesOncePerKey(t *testing.T) {
	memo, err := NewMemo(16)
	if err != nil {
		t.Fatalf("NewMemo returned error: %v", err)
	}

	var calls int32
	compute := func() (any, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _, err := memo.Do("key", compute)
			if err != nil {
				t.Errorf("Do returned error: %v", err)
				return
			}
			if v.(int) != 42 {
				t.Errorf("Do = %v, want 42", v)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("compute ran %d times, want 1", got)
	}
}

func TestMemoDoesNotCacheErrors(t *testing.T) {
	memo, err := NewMemo(16)
	if err != nil {
		t.Fatalf("NewMemo returned error: %v", err)
	}

	boom := errors.New("boom")
	calls := 0
	if _, _, err := memo.Do("key", func() (any, error) {
		calls++
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	v, hit, err := memo.Do("key", func() (any, error) {
		calls++
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if hit {
		t.Error("failed computation should not have been cached")
	}
	if v.(string) != "recovered" || calls != 2 {
		t.Errorf("v = %v, calls = %d; want recovered after retry", v, calls)
	}
}

func TestMemoInvalidate(t *testing.T) {
	memo, err := NewMemo(16)
	if err != nil {
		t.Fatalf("NewMemo returned error: %v", err)
	}

	calls := 0
	compute := func() (any, error) {
		calls++
		return calls, nil
	}

	memo.Do("key", compute)
	memo.Invalidate()
	if memo.Len() != 0 {
		t.Errorf("Len = %d after invalidate, want 0", memo.Len())
	}
	memo.Do("key", compute)
	if calls != 2 {
		t.Errorf("compute ran %d times, want 2 after invalidation", calls)
	}
}

func TestMemoKeyOrderIndependent(t *testing.T) {
	a := MemoKey([]string{"p1", "p2", "p3"}, "cfg1", "average", "7")
	b := MemoKey([]string{"p3", "p1", "p2"}, "cfg1", "average", "7")
	if a != b {
		t.Errorf("keys differ for reordered player sets: %s vs %s", a, b)
	}

	c := MemoKey([]string{"p1", "p2"}, "cfg1", "average", "7")
	if a == c {
		t.Error("different player sets should produce different keys")
	}
	d := MemoKey([]string{"p1", "p2", "p3"}, "cfg2", "average", "7")
	if a == d {
		t.Error("different configs should produce different keys")
	}
}
