package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCommandsRegistered(t *testing.T) {
	for _, name := range []string{"plan-insert", "commit-insert", "extract", "learn-filter"} {
		cmd, _, err := ClientCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestInsertRequest(t *testing.T) {
	maxStack, inFlight = 16, true
	t.Cleanup(func() { maxStack, inFlight = 64, false })

	req, err := insertRequest([]string{"chest-1", "minecraft:ender_pearl", "20"})
	require.NoError(t, err)
	assert.Equal(t, "chest-1", req.ContainerID)
	require.Len(t, req.Candidates, 1)
	assert.Equal(t, 20, req.Candidates[0].Stack.Count)
	assert.Equal(t, 16, req.Candidates[0].Stack.MaxStack)
	assert.True(t, req.Candidates[0].InFlight)

	_, err = insertRequest([]string{"chest-1", "minecraft:ender_pearl", "20x"})
	assert.Error(t, err)
}

func TestLearnFilterArgs(t *testing.T) {
	assert.NoError(t, learnFilterCmd.Args(learnFilterCmd, nil))
	assert.NoError(t, learnFilterCmd.Args(learnFilterCmd, []string{"chest-1"}))
	assert.Error(t, learnFilterCmd.Args(learnFilterCmd, []string{"chest-1", "chest-2"}))
}

func TestModeFilter(t *testing.T) {
	t.Cleanup(func() { filterMode, filterItems, filterTags = "whitelist", nil, nil })

	filterItems, filterTags = nil, nil
	assert.Nil(t, modeFilter())

	filterMode = "blacklist"
	filterTags = []string{"forge:ores"}
	f := modeFilter()
	require.NotNil(t, f)
	assert.Equal(t, "blacklist", f.Mode)
	assert.Equal(t, []string{"forge:ores"}, f.Tags)
	assert.Empty(t, f.Stacks)

	filterItems = []string{"minecraft:dirt"}
	f = modeFilter()
	require.Len(t, f.Stacks, 1)
	assert.Equal(t, "minecraft:dirt", f.Stacks[0].ID)
	assert.Equal(t, 1, f.Stacks[0].Count)
}
