package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vpack/vpack/pkg/semver"
)

func TestSetVersionCreatesManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")

	require.NoError(t, SetVersion(path, semver.MustParse("1.1.1")))

	code, err := ReadVersionCode(path)
	require.NoError(t, err)
	assert.EqualValues(t, 16777249, code)
}

func TestSetVersionPreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	seed := "appId: com.example.app\nversionCode: 1\nminSdk: 26\n"
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	require.NoError(t, SetVersion(path, semver.MustParse("4.7.20")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	doc := map[string]any{}
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "com.example.app", doc["appId"])
	assert.Equal(t, 26, doc["minSdk"])
	assert.Equal(t, 67109108, doc["versionCode"])
	assert.Equal(t, "4.7.20", doc["versionName"])
}

func TestSetVersionOverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")

	require.NoError(t, SetVersion(path, semver.MustParse("1.0.0")))
	require.NoError(t, SetVersion(path, semver.MustParse("2.1.1")))

	code, err := ReadVersionCode(path)
	require.NoError(t, err)
	assert.EqualValues(t, 33554465, code)
}

func TestReadVersionCodeMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("appId: x\n"), 0o644))

	_, err := ReadVersionCode(path)
	assert.ErrorIs(t, err, ErrNoVersionCode)
}

func TestReadVersionCodeBadType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versionCode: high\n"), 0o644))

	_, err := ReadVersionCode(path)
	assert.Error(t, err)
}

func TestSetVersionBadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a\n- list\n"), 0o644))

	err := SetVersion(path, semver.MustParse("1.0.0"))
	assert.Error(t, err)
}
