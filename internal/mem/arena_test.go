package mem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GentleHumour/tomoko/internal/mem"
)

func TestArenaCellRoundTrip(t *testing.T) {
	a := mem.NewArena(64)

	require.NoError(t, a.SetCell(0, 42))
	v, err := a.Cell(0)
	require.NoError(t, err)
	require.EqualValues(t, 42, v)

	require.NoError(t, a.SetCell(8, -7))
	v, err = a.Cell(8)
	require.NoError(t, err)
	require.EqualValues(t, -7, v)
}

func TestArenaByteRoundTrip(t *testing.T) {
	a := mem.NewArena(16)
	require.NoError(t, a.SetByte(3, 0xFF))
	b, err := a.Byte(3)
	require.NoError(t, err)
	require.Equal(t, byte(0xFF), b)
}

func TestArenaBoundsChecked(t *testing.T) {
	a := mem.NewArena(8)
	_, err := a.Byte(8)
	require.Error(t, err)
	require.ErrorAs(t, err, &mem.BoundsError{})

	err = a.SetCell(1, 1)
	require.Error(t, err, "unaligned-but-overflowing cell store must fail")
}

func TestArenaFillAndCopy(t *testing.T) {
	a := mem.NewArena(16)
	require.NoError(t, a.Fill(0, 8, 0xAA))
	bs, err := a.Bytes(0, 8)
	require.NoError(t, err)
	for _, b := range bs {
		require.Equal(t, byte(0xAA), b)
	}

	require.NoError(t, a.Copy(8, 0, 8))
	bs, err = a.Bytes(8, 8)
	require.NoError(t, err)
	for _, b := range bs {
		require.Equal(t, byte(0xAA), b)
	}
}
