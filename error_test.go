package filmoscope_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/filmoscope"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := filmoscope.Errorf(filmoscope.ENOTFOUND, "article %q not found", "abc123")

	assert.Equal(t, filmoscope.ENOTFOUND, filmoscope.ErrorCode(err))
	assert.Equal(t, "article \"abc123\" not found", filmoscope.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, filmoscope.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filmoscope.EINTERNAL, filmoscope.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, filmoscope.ErrorMessage(nil))
}

func TestArticle_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid article passes", func(t *testing.T) {
		t.Parallel()

		a := &filmoscope.Article{
			Title:     "Dark City",
			TitleHash: "aaaaaaaaaaaaaaaa",
			TextHash:  "bbbbbbbbbbbbbbbb",
		}
		assert.NoError(t, a.Validate())
	})

	t.Run("missing title is EINVALID", func(t *testing.T) {
		t.Parallel()

		a := &filmoscope.Article{TitleHash: "a", TextHash: "b"}
		assert.Equal(t, filmoscope.EINVALID, filmoscope.ErrorCode(a.Validate()))
	})

	t.Run("missing hashes is EINVALID", func(t *testing.T) {
		t.Parallel()

		a := &filmoscope.Article{Title: "Dark City"}
		assert.Equal(t, filmoscope.EINVALID, filmoscope.ErrorCode(a.Validate()))
	})
}
