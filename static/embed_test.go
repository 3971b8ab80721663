package static

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmaster-app/testmaster/content"
)

func TestAssetsPresent(t *testing.T) {
	for _, name := range []string{"mount.js", "landing.css", "icons.svg"} {
		data, err := fs.ReadFile(Assets(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestSpriteCoversIconSet(t *testing.T) {
	data, err := fs.ReadFile(Assets(), "icons.svg")
	require.NoError(t, err)

	icons := []content.Icon{
		content.IconBrain, content.IconBarChart, content.IconClock, content.IconShield,
		content.IconCheckCircle, content.IconTarget, content.IconTrophy, content.IconZap,
		content.IconUsers, content.IconStar,
	}
	for _, i := range icons {
		assert.True(t, strings.Contains(string(data), `id="`+string(i)+`"`), "missing symbol %s", i)
	}
}
