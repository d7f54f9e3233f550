package area_test

import (
	"testing"

	"bestcat/internal/core/domain/model/area"
	"bestcat/internal/core/domain/model/kernel"
	"bestcat/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArea(t *testing.T) {
	t.Run("should create valid area", func(t *testing.T) {
		a, err := area.NewArea(kernel.NewUUID(), "Seoul", "Downtown")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "Seoul", a.City())
		assert.Equal(t, "Downtown", a.Name())
		assert.False(t, a.IsDeleted())
	})

	t.Run("should fail with blank city or name", func(t *testing.T) {
		_, err := area.NewArea(kernel.NewUUID(), "", "Downtown")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = area.NewArea(kernel.NewUUID(), "Seoul", "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestArea_DeleteAndUpdate(t *testing.T) {
	t.Run("delete stamps actor and blocks updates", func(t *testing.T) {
		a, err := area.NewArea(kernel.NewUUID(), "Seoul", "Downtown")
		require.NoError(t, err)
		actor := kernel.NewUUID()

		require.NoError(t, a.Delete(actor))

		assert.True(t, a.IsDeleted())
		assert.True(t, a.DeletedBy().IsEqual(actor))
		require.ErrorIs(t, a.Update("Seoul", "Uptown"), errs.ErrInvalidState)
	})

	t.Run("update replaces attributes while live", func(t *testing.T) {
		a, err := area.NewArea(kernel.NewUUID(), "Seoul", "Downtown")
		require.NoError(t, err)

		require.NoError(t, a.Update("Busan", "Harborside"))

		assert.Equal(t, "Busan", a.City())
		assert.Equal(t, "Harborside", a.Name())
	})
}
