package vitae_test

import (
	"testing"

	"github.com/fwojciec/vitae"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vitae.Errorf(vitae.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, vitae.ENOTFOUND, vitae.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", vitae.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitae.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vitae.ErrorMessage(nil))
}
