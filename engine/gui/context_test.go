package gui

import (
	"testing"

	"github.com/mmp/imgui-go/v4"
	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/studio3d/engine/core"
)

func TestKeyMappingIsInjective(t *testing.T) {
	seen := make(map[core.KeyCode]int)
	for imguiKey, key := range keyMapping() {
		assert.Less(t, key, core.KEYS_MAX_KEYS)
		if other, ok := seen[key]; ok {
			t.Fatalf("imgui keys %d and %d both map to %d", other, imguiKey, key)
		}
		seen[key] = imguiKey
	}
	assert.Equal(t, core.KEY_ENTER, keyMapping()[imgui.KeyEnter])
}
