package metrics

import "testing"

func TestCacheLabelsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range []string{CacheHit, CacheMiss, CacheStore, CacheStale, CacheFallback, CacheFailure} {
		if v == "" || seen[v] {
			t.Fatalf("cache outcome %q is empty or duplicated", v)
		}
		seen[v] = true
	}
	if OriginSame == OriginRemote {
		t.Fatalf("origin classes must differ")
	}
}
