package attempt

import (
	"testing"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz(durationMinutes int) model.Quiz {
	return model.Quiz{
		ID:              uuid.New(),
		Title:           "Sample Quiz",
		DurationMinutes: durationMinutes,
	}
}

func testQuestions(quizID uuid.UUID, correct ...int) []model.Question {
	questions := make([]model.Question, len(correct))
	for i, c := range correct {
		questions[i] = model.Question{
			ID:            uuid.New(),
			QuizID:        quizID,
			Prompt:        "q",
			Options:       []string{"a", "b", "c", "d"},
			CorrectOption: c,
			OrderNum:      i + 1,
		}
	}
	return questions
}

func TestScoringAllCorrect(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 0, 1, 2, 3)
	a := New(quiz, questions, 1, nil, nil)

	for _, q := range questions {
		require.NoError(t, a.SelectAnswer(q.ID, q.CorrectOption))
	}

	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 4, res.TotalQuestions)
	assert.Equal(t, 100, res.Percentage)
	assert.False(t, res.AutoSubmitted)
}

func TestScoringPartial(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 1, 1)
	a := New(quiz, questions, 1, nil, nil)

	require.NoError(t, a.SelectAnswer(questions[0].ID, 1)) // correct
	require.NoError(t, a.SelectAnswer(questions[1].ID, 0)) // wrong

	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 50, res.Percentage)
}

func TestScoringUnansweredCountsWrong(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 0, 0, 0)
	a := New(quiz, questions, 1, nil, nil)

	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.Percentage)
	assert.Empty(t, res.Answers)
}

func TestScoringRoundsToNearest(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 0, 0, 0)
	a := New(quiz, questions, 1, nil, nil)

	require.NoError(t, a.SelectAnswer(questions[0].ID, 0))
	require.NoError(t, a.SelectAnswer(questions[1].ID, 0))
	require.NoError(t, a.SelectAnswer(questions[2].ID, 3))

	// 2/3 rounds to 67, not 66.
	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 67, res.Percentage)
}

func TestAnswerOverwrite(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 2)
	a := New(quiz, questions, 1, nil, nil)

	require.NoError(t, a.SelectAnswer(questions[0].ID, 0))
	require.NoError(t, a.SelectAnswer(questions[0].ID, 2))

	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, 2, res.Answers[questions[0].ID.String()])
}

func TestSubmitIsLatched(t *testing.T) {
	quiz := testQuiz(10)
	calls := 0
	a := New(quiz, testQuestions(quiz.ID, 0), 1, func(*Result) { calls++ }, nil)

	first, err := a.Submit()
	require.NoError(t, err)

	second, err := a.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestAnswerAfterSubmitRejected(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 0)
	a := New(quiz, questions, 1, nil, nil)

	_, err := a.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, a.SelectAnswer(questions[0].ID, 0), ErrAlreadySubmitted)
}

func TestClockExpiryAutoSubmitsOnce(t *testing.T) {
	quiz := testQuiz(1) // 60 seconds
	questions := testQuestions(quiz.ID, 1)
	var results []*Result
	a := New(quiz, questions, 1, func(r *Result) { results = append(results, r) }, nil)

	require.NoError(t, a.SelectAnswer(questions[0].ID, 1))

	for i := 0; i < 120; i++ {
		a.Tick()
	}

	require.Len(t, results, 1)
	res := results[0]
	assert.True(t, res.AutoSubmitted)
	assert.Equal(t, 100, res.Percentage)
	assert.Equal(t, "01:00", res.TimeSpent)
	assert.Equal(t, 0, a.Snapshot().RemainingSeconds)
}

func TestTickStopsAfterManualSubmit(t *testing.T) {
	quiz := testQuiz(1)
	calls := 0
	a := New(quiz, testQuestions(quiz.ID, 0), 1, func(*Result) { calls++ }, nil)

	a.Tick()
	_, err := a.Submit()
	require.NoError(t, err)

	remaining := a.Snapshot().RemainingSeconds
	a.Tick()
	a.Tick()

	assert.Equal(t, remaining, a.Snapshot().RemainingSeconds)
	assert.Equal(t, 1, calls)
}

func TestNavigationClamps(t *testing.T) {
	quiz := testQuiz(10)
	a := New(quiz, testQuestions(quiz.ID, 0, 0, 0), 1, nil, nil)

	assert.Equal(t, 0, a.Retreat())
	assert.Equal(t, 1, a.Advance())
	assert.Equal(t, 2, a.Advance())
	assert.Equal(t, 2, a.Advance())
	assert.Equal(t, 0, a.JumpTo(-5))
	assert.Equal(t, 2, a.JumpTo(99))
	assert.Equal(t, 1, a.JumpTo(1))
}

func TestDiscardProducesNoResult(t *testing.T) {
	quiz := testQuiz(10)
	calls := 0
	a := New(quiz, testQuestions(quiz.ID, 0), 1, func(*Result) { calls++ }, nil)

	require.NoError(t, a.Discard())

	res, err := a.Submit()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Nil(t, res)
	assert.Equal(t, 0, calls)
}

func TestEmptyQuestionSetUsesFallback(t *testing.T) {
	quiz := testQuiz(10)
	a := New(quiz, nil, 1, nil, nil)

	questions := a.Questions()
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Len(t, q.Options, 4)
	}

	res, err := a.Submit()
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, 0, res.Percentage)
}

func TestAnswerMirrorCallback(t *testing.T) {
	quiz := testQuiz(10)
	questions := testQuestions(quiz.ID, 0)

	var gotQuestion uuid.UUID
	var gotOption int
	a := New(quiz, questions, 1, nil, func(attemptID, questionID uuid.UUID, option int) {
		gotQuestion = questionID
		gotOption = option
	})

	require.NoError(t, a.SelectAnswer(questions[0].ID, 3))
	assert.Equal(t, questions[0].ID, gotQuestion)
	assert.Equal(t, 3, gotOption)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "00:00", FormatSeconds(0))
	assert.Equal(t, "00:59", FormatSeconds(59))
	assert.Equal(t, "01:00", FormatSeconds(60))
	assert.Equal(t, "12:05", FormatSeconds(725))
	assert.Equal(t, "00:00", FormatSeconds(-10))
}
