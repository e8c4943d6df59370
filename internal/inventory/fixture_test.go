package inventory_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

const drawerFixture = `
containers:
  - id: drawer
    slots:
      - declared: 999
        ceiling: 10
        allow: [minecraft:cobblestone]
        stack:
          id: minecraft:cobblestone
          count: 4
          meta: {name: Rocky}
  - id: chest
    slots:
      - declared: 64
        stack_capped: true
        copies: 26
      - declared: 64
        stack:
          id: minecraft:iron_ore
          count: 12
          tags: [forge:ores, Forge:Ores/Iron]
`

func TestLoadFixture(t *testing.T) {
	named, err := inventory.LoadFixture(strings.NewReader(drawerFixture))
	require.NoError(t, err)
	require.Len(t, named, 2)

	drawer := named[0]
	assert.Equal(t, "drawer", drawer.ID)
	require.Equal(t, 1, drawer.Container.SlotCount())
	assert.Equal(t, 999, drawer.Container.DeclaredLimit(0))

	occ := drawer.Container.Occupant(0)
	assert.Equal(t, 4, occ.Count)
	assert.Equal(t, 64, occ.Kind.MaxStackSize, "max stack defaults to 64")
	assert.Equal(t, "Rocky", occ.Meta["name"])
	assert.Equal(t, 6, drawer.Container.TestInsert(0, occ.WithCount(50)))

	chest := named[1]
	assert.Equal(t, "chest", chest.ID)
	assert.Equal(t, 27, chest.Container.SlotCount())
	assert.Equal(t, []string{"forge:ores", "forge:ores/iron"}, chest.Container.Occupant(26).Kind.Tags)
}

func TestLoadFixtureErrors(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		errCode errors.Code
		errMsg  string
	}{
		{
			name:    "empty document",
			doc:     "",
			errCode: errors.CodeInvalidArgument,
			errMsg:  "fixture is empty",
		},
		{
			name:    "unknown field",
			doc:     "containers:\n  - id: a\n    colour: red\n",
			errCode: errors.CodeInvalidArgument,
			errMsg:  "failed to parse fixture",
		},
		{
			name:    "missing id",
			doc:     "containers:\n  - slots: [{declared: 1}]\n",
			errCode: errors.CodeInvalidArgument,
			errMsg:  "missing an id",
		},
		{
			name:    "duplicate id",
			doc:     "containers:\n  - id: a\n  - id: a\n",
			errCode: errors.CodeAlreadyExists,
			errMsg:  "defined twice",
		},
		{
			name:    "negative limit",
			doc:     "containers:\n  - id: a\n    slots: [{declared: -1}]\n",
			errCode: errors.CodeInvalidArgument,
			errMsg:  "declared: must not be negative",
		},
		{
			name:    "occupant above declared limit",
			doc:     "containers:\n  - id: a\n    slots: [{declared: 4, stack: {id: x, count: 5}}]\n",
			errCode: errors.CodeInvalidArgument,
			errMsg:  "exceeds declared limit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			named, err := inventory.LoadFixture(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Nil(t, named)
			assert.Equal(t, tc.errCode, errors.GetCode(err))
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
