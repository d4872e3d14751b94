package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	_, ok = PrincipalFromContext(WithPrincipal(context.Background(), nil))
	assert.False(t, ok)

	want := &Principal{ID: 4, Email: "a@x.com"}
	got, ok := PrincipalFromContext(WithPrincipal(context.Background(), want))
	assert.True(t, ok)
	assert.Same(t, want, got)
}
