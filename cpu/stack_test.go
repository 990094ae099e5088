package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x12345678))
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(int64(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{}
	s.Push(0x12345678)
	s.Push(-5)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(int64(-5), val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(int64(0x12345678), val)
	assert.True(s.Empty())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(int64(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{}
	s.Push(1)
	s.Push(2)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int64(2), val)
	assert.Equal(2, s.Len())
}

func TestStack_Limit(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{Limit: 4}

	for i := range 4 {
		assert.False(s.Full())
		assert.True(s.Push(int64(i)))
	}

	assert.True(s.Full())
	assert.False(s.Push(99))
	assert.Equal(4, s.Len())

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int64(3), val)
}

func TestStack_Unbounded(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{}
	for i := range 1000 {
		assert.True(s.Push(int64(i)))
	}
	assert.False(s.Full())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int64]{Limit: 8}
	s.Push(1)
	s.Push(2)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(8, s.Limit)

	s.Reset()
	assert.True(s.Empty())
}
