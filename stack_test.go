package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack("test", 4)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	v, err := s.Pop()
	require.NoError(t, err)
	require.EqualValues(t, 2, v)
	require.Equal(t, 1, s.Depth())
}

func TestStackOverflowUnderflow(t *testing.T) {
	s := NewStack("test", 2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.Error(t, s.Push(3))

	_, err := s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	require.Error(t, err)
}

func TestStackPickStick(t *testing.T) {
	s := NewStack("test", 4)
	require.NoError(t, s.Push(10))
	require.NoError(t, s.Push(20))
	require.NoError(t, s.Push(30))

	v, err := s.Pick(0)
	require.NoError(t, err)
	require.EqualValues(t, 30, v)

	v, err = s.Pick(2)
	require.NoError(t, err)
	require.EqualValues(t, 10, v)

	require.NoError(t, s.Stick(1, 99))
	v, err = s.Pick(1)
	require.NoError(t, err)
	require.EqualValues(t, 99, v)

	_, err = s.Pick(3)
	require.Error(t, err)
}

func TestStackInsert(t *testing.T) {
	s := NewStack("test", 4)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.NoError(t, s.Insert(1, 42))

	require.Equal(t, 3, s.Depth())
	snap := s.Snapshot()
	require.EqualValues(t, []Cell{1, 42, 2}, snap)
}

func TestStackSP(t *testing.T) {
	s := NewStack("test", 4)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.EqualValues(t, 2, s.SP())

	require.NoError(t, s.SetSP(1))
	require.Equal(t, 1, s.Depth())

	require.Error(t, s.SetSP(-1))
	require.Error(t, s.SetSP(5))
}
