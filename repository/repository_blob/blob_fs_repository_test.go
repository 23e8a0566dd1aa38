package repository_blob

import (
	"context"
	"testing"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSBlobRepository(t *testing.T) {
	ctx := context.Background()
	store := NewFSBlobRepository(afero.NewMemMapFs())

	_, err := store.Get(ctx, "a1.mp3")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	require.NoError(t, store.Put(ctx, "a1.mp3", []byte("ID3 audio")))
	data, err := store.Get(ctx, "a1.mp3")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3 audio"), data)

	require.NoError(t, store.Delete(ctx, "a1.mp3"))
	_, err = store.Get(ctx, "a1.mp3")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)

	// 删除不存在的对象不报错
	assert.NoError(t, store.Delete(ctx, "a1.mp3"))
	assert.NoError(t, store.Delete(ctx, "never-written.jpg"))
}

func TestFSBlobRepository_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	store := NewFSBlobRepository(afero.NewMemMapFs())

	for _, key := range []string{"", "..", "../etc/passwd", "dir/a.mp3", `dir\a.mp3`} {
		assert.Error(t, store.Put(ctx, key, []byte("x")), "key %q", key)
		_, err := store.Get(ctx, key)
		assert.Error(t, err, "key %q", key)
		assert.Error(t, store.Delete(ctx, key), "key %q", key)
	}
}

func TestLocalBlobRepository(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()

	store, err := NewLocalBlobRepository(root)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "c1.png", []byte{0x89, 'P', 'N', 'G'}))

	exists, err := afero.Exists(afero.NewOsFs(), root+"/c1.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "c1.png"))
	exists, err = afero.Exists(afero.NewOsFs(), root+"/c1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}
