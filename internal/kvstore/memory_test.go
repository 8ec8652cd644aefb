package kvstore

import (
	"context"
	"testing"
)

func TestMemoryGetMissing(t *testing.T) {
	kv := NewMemory()

	value, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if value != nil {
		t.Errorf("Get on missing key = %q, want nil", value)
	}
}

func TestMemorySetGet(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.Set(ctx, "a", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := kv.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(value) != `{"v":1}` {
		t.Errorf("Get = %q, want %q", value, `{"v":1}`)
	}
}

func TestMemoryPrefixScanOrder(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	kv.Set(ctx, "revision:1:c", []byte("first"))
	kv.Set(ctx, "revision:1:a", []byte("second"))
	kv.Set(ctx, "progress:1:x", []byte("other"))
	kv.Set(ctx, "revision:1:b", []byte("third"))

	values, err := kv.GetByPrefix(ctx, "revision:1:")
	if err != nil {
		t.Fatalf("GetByPrefix failed: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(values) != len(want) {
		t.Fatalf("GetByPrefix returned %d values, want %d", len(values), len(want))
	}
	for i, w := range want {
		if string(values[i]) != w {
			t.Errorf("values[%d] = %q, want %q (insertion order)", i, values[i], w)
		}
	}
}

func TestMemoryOverwriteKeepsOrder(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	kv.Set(ctx, "k:1", []byte("one"))
	kv.Set(ctx, "k:2", []byte("two"))
	kv.Set(ctx, "k:1", []byte("one-updated"))

	values, _ := kv.GetByPrefix(ctx, "k:")
	if len(values) != 2 {
		t.Fatalf("GetByPrefix returned %d values, want 2", len(values))
	}
	if string(values[0]) != "one-updated" {
		t.Errorf("values[0] = %q, want overwritten value in original position", values[0])
	}
	if string(values[1]) != "two" {
		t.Errorf("values[1] = %q, want %q", values[1], "two")
	}
}
