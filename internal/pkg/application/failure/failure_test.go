package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestKindOf(t *testing.T) {
	is := is.New(t)

	is.Equal(NotFound, KindOf(NotFoundf("plant %d not found", 1)))
	is.Equal(Conflict, KindOf(fmt.Errorf("wrapped: %w", Conflictf("module already has a plant connected"))))
	is.Equal(Internal, KindOf(errors.New("boom")))
	is.Equal(Internal, KindOf(nil))
}

func TestErrorsIsMatchesKind(t *testing.T) {
	is := is.New(t)

	err := Forbiddenf("not your plant")

	is.True(errors.Is(err, ErrForbidden))
	is.True(!errors.Is(err, ErrNotFound))
}

func TestWrapKeepsCause(t *testing.T) {
	is := is.New(t)

	cause := errors.New("connection reset")
	err := Internalf(cause, "could not insert plant")

	is.True(errors.Is(err, cause))
	is.Equal("could not insert plant: connection reset", err.Error())
	is.Equal("could not insert plant", MessageOf(err))
	is.Equal("internal error", MessageOf(cause))
}
