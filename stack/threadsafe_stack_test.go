package stack

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestThreadSafeStack_Push(t *testing.T) {
	stack := New[int](WithThreadSafety())

	assert.Equal(t, stack.Size(), 0, "stack should initially be empty")
	require.NoError(t, stack.Push(1))
	assert.Equal(t, stack.Size(), 1, "wrong stack size")
	require.NoError(t, stack.Push(2))
	assert.Equal(t, stack.Size(), 2, "wrong stack size")
	require.NoError(t, stack.Push(3))
	assert.Equal(t, stack.Size(), 3, "wrong stack size")
}

func TestThreadSafeStack_Pop(t *testing.T) {
	stack := New[int](WithThreadSafety())

	_, err := stack.Pop()
	assert.ErrorIs(t, err, ErrUnderflow, "stack should underflow when its empty")
	require.NoError(t, stack.Push(1))
	require.NoError(t, stack.Push(2))
	assert.Equal(t, stack.Size(), 2, "wrong stack size")
	value, err := stack.Pop()
	require.NoError(t, err, "stack should not underflow if its not empty")
	assert.Equal(t, 2, value, "wrong element popped from stack")
	assert.Equal(t, stack.Size(), 1, "wrong stack size")
	value, err = stack.Pop()
	require.NoError(t, err, "stack should not underflow if its not empty")
	assert.Equal(t, 1, value, "wrong element popped from stack")
	assert.Equal(t, stack.Size(), 0, "wrong stack size")
	_, err = stack.Pop()
	assert.ErrorIs(t, err, ErrUnderflow, "stack should underflow when its empty")
}

func TestThreadSafeStack_Peek(t *testing.T) {
	stack := New[int](WithThreadSafety())

	_, err := stack.Peek()
	assert.ErrorIs(t, err, ErrUnderflow, "stack should underflow when its empty")
	require.NoError(t, stack.Push(1))
	value, err := stack.Peek()
	require.NoError(t, err, "stack should not underflow if its not empty")
	assert.Equal(t, value, 1, "wrong element at top of stack")
	assert.Equal(t, stack.Size(), 1, "wrong stack size")
}

func TestThreadSafeStack_Clear(t *testing.T) {
	stack := New[int](WithThreadSafety())

	require.NoError(t, stack.Push(1))
	require.NoError(t, stack.Push(2))
	require.NoError(t, stack.Push(3))
	assert.Equal(t, stack.Size(), 3, "wrong stack size")
	stack.Clear()
	assert.Equal(t, stack.Size(), 0, "wrong stack size")
	assert.True(t, stack.IsEmpty(), "stack should be empty")
}

func TestThreadSafeStack_WrapsConfiguredBackend(t *testing.T) {
	stack := New[int](WithThreadSafety(), WithBackend(ListBackend))

	threadSafe, ok := stack.(*threadSafeStack[int])
	require.True(t, ok, "stack should be wrapped by the thread safe decorator")
	assert.IsType(t, &linkedStack[int]{}, threadSafe.stack, "wrong wrapped backend")
}

func TestThreadSafeStack_ConcurrentAccess(t *testing.T) {
	const workerCount = 4
	const elementsPerWorker = 1000

	stack := New[int](WithThreadSafety())

	var pushedCounter atomic.Int64

	var pushers sync.WaitGroup
	for worker := 0; worker < workerCount; worker++ {
		pushers.Add(1)
		go func() {
			defer pushers.Done()

			for i := 0; i < elementsPerWorker; i++ {
				if assert.NoError(t, stack.Push(i)) {
					pushedCounter.Add(1)
				}
			}
		}()
	}
	pushers.Wait()

	assert.EqualValues(t, workerCount*elementsPerWorker, pushedCounter.Load())
	assert.Equal(t, workerCount*elementsPerWorker, stack.Size(), "wrong stack size")

	var poppedCounter atomic.Int64

	var poppers sync.WaitGroup
	for worker := 0; worker < workerCount; worker++ {
		poppers.Add(1)
		go func() {
			defer poppers.Done()

			for {
				if _, err := stack.Pop(); err != nil {
					return
				}
				poppedCounter.Add(1)
			}
		}()
	}
	poppers.Wait()

	assert.EqualValues(t, workerCount*elementsPerWorker, poppedCounter.Load())
	assert.True(t, stack.IsEmpty(), "stack should be empty")
}
