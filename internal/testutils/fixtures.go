package testutils

import (
	"github.com/KirkDiggler/logistics-api/internal/entities/items"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

// Common kinds for tests
var (
	Cobblestone = items.Kind{ID: "minecraft:cobblestone", MaxStackSize: 64}
	Sand        = items.Kind{ID: "minecraft:sand", MaxStackSize: 64}
	EnderPearl  = items.Kind{ID: "minecraft:ender_pearl", MaxStackSize: 16}
	Pickaxe     = items.Kind{ID: "minecraft:iron_pickaxe", MaxStackSize: 1}
)

// Test container ids
const (
	ChestID  = "chest-1"
	DrawerID = "drawer-1"
	NodeID   = "node-1"
)

// CreateTestChest returns a 27-slot chest holding 70 cobblestone and 10 sand
func CreateTestChest() *inventory.Memory {
	slots := make([]inventory.SlotConfig, 27)
	for i := range slots {
		slots[i] = inventory.SlotConfig{Declared: 64, StackCapped: true}
	}
	slots[0].Stack = items.New(Cobblestone, 64)
	slots[1].Stack = items.New(Sand, 10)
	slots[2].Stack = items.New(Cobblestone, 6)
	return inventory.NewMemory(slots...)
}

// CreateTestDrawer returns a single-slot drawer that declares 999 but holds 10
func CreateTestDrawer() *inventory.Memory {
	return inventory.NewMemory(inventory.SlotConfig{
		Declared: 999,
		Ceiling:  10,
		Allow:    []string{Cobblestone.ID},
	})
}
