package random_test

import (
	"encoding/hex"
	"testing"

	"github.com/jvdberg/go-api-base/random"
)

func TestNewString(t *testing.T) {
	t.Parallel()

	first := random.NewString(32)
	if len(first) != 64 {
		t.Errorf("got %d characters, want 64", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Errorf("expected hex output, got %q: %v", first, err)
	}

	second := random.NewString(32)
	if first == second {
		t.Error("two generated strings collided")
	}
}
