package cache

import (
	"crypto/sha256"
	"testing"
)

func TestPutGetRoundTrip(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}

	key := sha256.Sum256([]byte("class C {}"))
	in := &Payload{
		Path:         "src/C.java",
		Passes:       1,
		Descriptions: []string{"removed redundant 'public'"},
	}
	if err := c.Put(key, in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var out Payload
	found, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found {
		t.Fatalf("expected a hit")
	}
	if out.Path != in.Path || out.Passes != in.Passes {
		t.Fatalf("payload = %+v, want %+v", out, in)
	}
	if len(out.Descriptions) != 1 || out.Descriptions[0] != in.Descriptions[0] {
		t.Fatalf("descriptions = %v", out.Descriptions)
	}
}

func TestGetMissing(t *testing.T) {
	c, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	var out Payload
	found, err := c.Get(sha256.Sum256([]byte("nope")), &out)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if found {
		t.Fatalf("expected a miss")
	}
}

func TestNilCacheIsInert(t *testing.T) {
	var c *DiskCache
	if err := c.Put(Digest{}, &Payload{}); err != nil {
		t.Fatalf("nil Put failed: %v", err)
	}
	if found, err := c.Get(Digest{}, &Payload{}); err != nil || found {
		t.Fatalf("nil Get = %v, %v", found, err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("nil DropAll failed: %v", err)
	}
}
