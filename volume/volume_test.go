package volume_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/volume"
)

var (
	profileA = guid.MustParse("A1A1A1A1-0000-0000-0000-000000000001") //nolint:gochecknoglobals
	profileB = guid.MustParse("B2B2B2B2-0000-0000-0000-000000000002") //nolint:gochecknoglobals
)

func TestDir(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, profileA.String()+volume.SectionExt), []byte{1, 2}, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.bin"), []byte("x"), 0o600))

	vol := volume.NewDir(dir)

	blob, err := vol.Section(ctx, profileA)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, blob)

	_, err = vol.Section(ctx, profileB)
	require.ErrorIs(t, err, volume.ErrNotFound)

	sections, err := vol.Sections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []guid.GUID{profileA}, sections)

	_, err = volume.NewDir(filepath.Join(dir, "missing")).Sections(ctx)
	require.Error(t, err)
}

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	blob := []byte{1, 2, 3}
	vol := volume.NewMemory().Put(profileB, blob).Put(profileA, []byte{9})

	blob[0] = 0xff

	got, err := vol.Section(ctx, profileB)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)

	got[1] = 0xff

	again, err := vol.Section(ctx, profileB)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)

	_, err = vol.Section(ctx, guid.New())
	require.ErrorIs(t, err, volume.ErrNotFound)

	sections, err := vol.Sections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []guid.GUID{profileA, profileB}, sections)
}

type failingSource struct {
	err error
}

func (f failingSource) Section(context.Context, guid.GUID) ([]byte, error) {
	return nil, f.err
}

func TestChain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	first := volume.NewMemory().Put(profileA, []byte{1})
	second := volume.NewMemory().Put(profileA, []byte{2}).Put(profileB, []byte{3})

	chain := volume.Chain{first, second}

	blob, err := chain.Section(ctx, profileA)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, blob, "first volume wins")

	blob, err = chain.Section(ctx, profileB)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, blob)

	_, err = chain.Section(ctx, guid.New())
	require.ErrorIs(t, err, volume.ErrNotFound)

	broken := errors.New("device error")

	_, err = volume.Chain{failingSource{err: broken}, second}.Section(ctx, profileB)
	require.ErrorIs(t, err, broken)

	blob, err = volume.Chain{failingSource{err: volume.ErrNotFound}, second}.Section(ctx, profileB)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, blob)

	_, err = volume.Chain{}.Section(ctx, profileA)
	require.ErrorIs(t, err, volume.ErrNotFound)
}
