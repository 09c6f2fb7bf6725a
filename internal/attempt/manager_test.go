package attempt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerOneAttemptPerStudent(t *testing.T) {
	m := NewManager()
	quiz := testQuiz(10)

	first := New(quiz, testQuestions(quiz.ID, 0), 7, nil, nil)
	require.NoError(t, m.Register(first))

	second := New(quiz, testQuestions(quiz.ID, 0), 7, nil, nil)
	assert.ErrorIs(t, m.Register(second), ErrInProgress)

	got, err := m.GetForStudent(7)
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Equal(t, 1, m.Count())
}

func TestManagerRemoveReleasesSlot(t *testing.T) {
	m := NewManager()
	quiz := testQuiz(10)

	first := New(quiz, testQuestions(quiz.ID, 0), 7, nil, nil)
	require.NoError(t, m.Register(first))
	require.NoError(t, first.Discard())
	m.Remove(first.ID())

	_, err := m.GetForStudent(7)
	assert.ErrorIs(t, err, ErrNotFound)

	second := New(quiz, testQuestions(quiz.ID, 0), 7, nil, nil)
	assert.NoError(t, m.Register(second))
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager()
	quiz := testQuiz(10)
	a := New(quiz, testQuestions(quiz.ID, 0), 1, nil, nil)

	_, err := m.Get(a.ID())
	assert.ErrorIs(t, err, ErrNotFound)
}
