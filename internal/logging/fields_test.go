package logging

import "testing"

func TestCommonAttrsSkipsBlanks(t *testing.T) {
	if got := commonAttrs("", ""); len(got) != 0 {
		t.Fatalf("expected no attrs, got %v", got)
	}
	if got := commonAttrs("sports-hub-service", ""); len(got) != 1 {
		t.Fatalf("expected service attr only, got %v", got)
	}
	if got := commonAttrs("sports-hub-service", "dev"); len(got) != 2 {
		t.Fatalf("expected service and version attrs, got %v", got)
	}
}
