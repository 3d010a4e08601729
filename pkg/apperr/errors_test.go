package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errGone := NotFound("gone", "gone")

	assert.Equal(t, KindNotFound, KindOf(errGone))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("load: %w", errGone)))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(nil))
}

func TestCodeOf(t *testing.T) {
	err := fmt.Errorf("line 2: %w", Conflict("insufficient_stock", "insufficient stock"))

	assert.Equal(t, "insufficient_stock", CodeOf(err))
	assert.Equal(t, "internal", CodeOf(errors.New("boom")))
	assert.Equal(t, "conflict", KindConflict.String())
}
