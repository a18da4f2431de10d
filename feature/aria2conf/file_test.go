package aria2conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yuanweize/BTtrackers-updater/core/tracker"
	"github.com/yuanweize/BTtrackers-updater/feature/aria2conf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTempConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aria2.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFile(path string) *aria2conf.File {
	cfg := aria2conf.Config{Path: path, BackupEnabled: true, BackupSuffix: ".bak"}
	return aria2conf.NewFile(cfg, zap.NewNop())
}

func TestValidate(t *testing.T) {
	t.Run("Existing file passes", func(t *testing.T) {
		path := writeTempConf(t, "dir=/downloads\n")
		assert.NoError(t, newFile(path).Validate())
	})

	t.Run("Missing file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.conf")
		assert.Error(t, newFile(path).Validate())
	})

	t.Run("Directory fails", func(t *testing.T) {
		assert.Error(t, newFile(t.TempDir()).Validate())
	})
}

func TestReadTrackers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "Single directive",
			content: "dir=/downloads\nbt-tracker=udp://a:1,udp://b:2\nmax-connections=16\n",
			want:    []string{"udp://a:1", "udp://b:2"},
		},
		{
			name:    "No directive returns empty set",
			content: "dir=/downloads\nmax-connections=16\n",
			want:    []string{},
		},
		{
			name:    "First directive wins",
			content: "bt-tracker=udp://first:1\nbt-tracker=udp://second:2\n",
			want:    []string{"udp://first:1"},
		},
		{
			name:    "Empty segments dropped",
			content: "bt-tracker=udp://a:1,, udp://b:2 ,\n",
			want:    []string{"udp://a:1", "udp://b:2"},
		},
		{
			name:    "Indented directive",
			content: "  bt-tracker=udp://a:1\n",
			want:    []string{"udp://a:1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConf(t, tt.content)
			set, err := newFile(path).ReadTrackers()
			require.NoError(t, err)
			assert.Equal(t, tt.want, set.Sorted())
		})
	}
}

func TestReadTrackers_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")
	_, err := newFile(path).ReadTrackers()
	assert.Error(t, err)
}

func TestWriteTrackers_ReplacesFirstDirective(t *testing.T) {
	path := writeTempConf(t, "dir=/downloads\nbt-tracker=http://a.com/announce\nmax-connections=16\n")

	merged := tracker.NewSet("http://a.com/announce", "http://b.com/announce")
	require.NoError(t, newFile(path).WriteTrackers(merged))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"dir=/downloads\nbt-tracker=http://a.com/announce,http://b.com/announce\nmax-connections=16\n",
		string(data))
}

func TestWriteTrackers_AppendsWhenMissing(t *testing.T) {
	path := writeTempConf(t, "dir=/downloads\n")

	require.NoError(t, newFile(path).WriteTrackers(tracker.NewSet("udp://a:1")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dir=/downloads\nbt-tracker=udp://a:1\n", string(data))
}

func TestWriteTrackers_LaterDuplicatePassesThrough(t *testing.T) {
	path := writeTempConf(t, "bt-tracker=udp://old:1\ndir=/downloads\nbt-tracker=udp://stale:2\n")

	require.NoError(t, newFile(path).WriteTrackers(tracker.NewSet("udp://new:1")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bt-tracker=udp://new:1\ndir=/downloads\nbt-tracker=udp://stale:2\n", string(data))
}

func TestWriteTrackers_RoundTrip(t *testing.T) {
	path := writeTempConf(t, "dir=/downloads\n")
	file := newFile(path)

	merged := tracker.NewSet("udp://b:2", "udp://a:1", "http://c.com/announce")
	require.NoError(t, file.WriteTrackers(merged))

	got, err := file.ReadTrackers()
	require.NoError(t, err)
	assert.Equal(t, merged.Sorted(), got.Sorted())
}

func TestBackup(t *testing.T) {
	t.Run("Creates backup copy", func(t *testing.T) {
		path := writeTempConf(t, "dir=/downloads\n")
		require.NoError(t, newFile(path).Backup())

		data, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		assert.Equal(t, "dir=/downloads\n", string(data))
	})

	t.Run("Disabled backup is a no-op", func(t *testing.T) {
		path := writeTempConf(t, "dir=/downloads\n")
		cfg := aria2conf.Config{Path: path, BackupEnabled: false, BackupSuffix: ".bak"}
		require.NoError(t, aria2conf.NewFile(cfg, zap.NewNop()).Backup())

		_, err := os.Stat(path + ".bak")
		assert.True(t, os.IsNotExist(err))
	})
}
