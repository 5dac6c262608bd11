package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	for _, dir := range []string{"order", "user"} {
		entries, err := fs.ReadDir(FS, dir)
		require.NoError(t, err)

		var up, down int
		for _, e := range entries {
			switch {
			case strings.HasSuffix(e.Name(), ".up.sql"):
				up++
			case strings.HasSuffix(e.Name(), ".down.sql"):
				down++
			}
		}
		assert.Positive(t, up, dir)
		assert.Equal(t, up, down, "%s: every up migration needs a down", dir)
	}
}
