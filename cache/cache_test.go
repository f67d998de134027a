package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	if got := Key("/gtfs/realtime/trip-updates.pbf", "json"); got != "/gtfs/realtime/trip-updates.pbf-json" {
		t.Errorf("Key = %q", got)
	}
	if Key("/a", "pbf") == Key("/a", "json") {
		t.Error("formats must produce distinct keys")
	}
}

func TestMemoryMissOnUnknownKey(t *testing.T) {
	m := NewMemory()
	if _, ok, err := m.Get("nope"); err != nil || ok {
		t.Errorf("Get unknown key: ok=%v err=%v", ok, err)
	}
}

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	if err := m.Set("k", []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := m.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(val, []byte("payload")) {
		t.Errorf("Get = %q", val)
	}
}

func TestMemoryExpiry(t *testing.T) {
	now := time.Unix(1000, 0)
	m := NewMemoryAt(func() time.Time { return now })

	if err := m.Set("k", []byte("v"), 30*time.Second); err != nil {
		t.Fatalf("Set: %v", err)
	}
	now = now.Add(29 * time.Second)
	if _, ok, _ := m.Get("k"); !ok {
		t.Error("entry expired before its TTL")
	}
	now = now.Add(2 * time.Second)
	if _, ok, _ := m.Get("k"); ok {
		t.Error("entry still cached after its TTL")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	_ = m.Set("k", []byte("old"), time.Minute)
	_ = m.Set("k", []byte("new"), time.Minute)
	val, ok, _ := m.Get("k")
	if !ok || string(val) != "new" {
		t.Errorf("Get after overwrite = %q, ok=%v", val, ok)
	}
}
