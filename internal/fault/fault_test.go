package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	req := require.New(t)

	err := New(Forbidden, "no permission")
	req.Equal(Forbidden, KindOf(err))
	req.Equal("no permission", DetailOf(err))

	// kind survives wrapping
	wrapped := fmt.Errorf("handler: %w", err)
	req.Equal(Forbidden, KindOf(wrapped))
	req.Equal("no permission", DetailOf(wrapped))
}

func TestKindOf_UnclassifiedError(t *testing.T) {
	req := require.New(t)

	err := errors.New("disk on fire")
	req.Equal(Internal, KindOf(err))
	// internals never leak to the client
	req.Equal("internal server error", DetailOf(err))
}

func TestWrap_PreservesCause(t *testing.T) {
	req := require.New(t)

	cause := errors.New("token is expired")
	err := Wrap(Unauthorized, "could not validate credentials", cause)
	req.ErrorIs(err, cause)
	req.Equal(Unauthorized, KindOf(err))
	req.Contains(err.Error(), "could not validate credentials")
}
