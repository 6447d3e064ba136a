package result

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("ok carries the value", func(t *testing.T) {
		r := Ok(42)

		assert.True(t, r.IsOk())
		assert.Equal(t, 42, r.Value())
		assert.NoError(t, r.Err())

		v, err := r.Unwrap()
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("fail carries the error and a zero value", func(t *testing.T) {
		cause := errors.New("boom")
		r := Fail[map[string]float64](cause)

		assert.False(t, r.IsOk())
		assert.Nil(t, r.Value())
		assert.ErrorIs(t, r.Err(), cause)
	})

	t.Run("match picks the branch", func(t *testing.T) {
		describe := func(r Result[string]) string {
			return Match(r,
				func(v string) string { return "ok:" + v },
				func(err error) string { return "err:" + err.Error() },
			)
		}

		assert.Equal(t, "ok:r1", describe(Ok("r1")))
		assert.Equal(t, "err:missing", describe(Fail[string](errors.New("missing"))))
	})
}
