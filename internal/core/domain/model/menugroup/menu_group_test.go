package menugroup_test

import (
	"testing"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/core/domain/model/menugroup"
	"kitchenpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuGroup(t *testing.T) {
	t.Run("creates group", func(t *testing.T) {
		g, err := menugroup.NewMenuGroup("두마리메뉴")

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		require.NoError(t, g.ID().Validate())
		assert.Equal(t, "두마리메뉴", g.Name().Value())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := menugroup.NewMenuGroup(name)

			require.ErrorIs(t, err, errs.ErrValueIsRequired, "%q", name)
		}
	})
}

func TestRestoreMenuGroup(t *testing.T) {
	name, _ := kernel.NewName(kernel.SubjectMenuGroup, "추천메뉴")

	_, err := menugroup.RestoreMenuGroup(kernel.UUID{}, name)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = menugroup.RestoreMenuGroup(kernel.NewUUID(), kernel.Name{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var g *menugroup.MenuGroup
	assert.Equal(t, menugroup.ErrMenuGroupIsNotConstructed, g.Validate())
}
