// Package attempt implements the lifecycle of a single quiz attempt:
// question set, current position, answer map, countdown, and submission.
package attempt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Azad-roy/Online-Exam-System/internal/model"
	"github.com/google/uuid"
)

// State enumerates the attempt lifecycle states.
type State string

const (
	StateLoading    State = "LOADING"
	StateActive     State = "ACTIVE"
	StateSubmitting State = "SUBMITTING"
	StateSubmitted  State = "SUBMITTED"
)

var (
	ErrAlreadySubmitted = errors.New("attempt has already been submitted")
)

// Result is the one-shot payload produced by a submitted attempt. It is
// handed to the result reporter exactly once and returned to the caller
// directly, never re-read from persisted state.
type Result struct {
	AttemptID      uuid.UUID      `json:"attempt_id"`
	UserID         int            `json:"user_id"`
	QuizID         uuid.UUID      `json:"quiz_id"`
	QuizTitle      string         `json:"quiz_title"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	Percentage     int            `json:"percentage"`
	TimeSpent      string         `json:"time_spent"`
	Answers        map[string]int `json:"answers"`
	SubmittedAt    time.Time      `json:"submitted_at"`
	AutoSubmitted  bool           `json:"auto_submitted"`
}

// Snapshot is a point-in-time view of an attempt for state queries.
type Snapshot struct {
	ID               uuid.UUID      `json:"id"`
	QuizID           uuid.UUID      `json:"quiz_id"`
	QuizTitle        string         `json:"quiz_title"`
	State            State          `json:"state"`
	CurrentIndex     int            `json:"current_index"`
	Answers          map[string]int `json:"answers"`
	RemainingSeconds int            `json:"remaining_seconds"`
	TotalQuestions   int            `json:"total_questions"`
	Result           *Result        `json:"result,omitempty"`
}

// Attempt owns one student's in-progress quiz attempt. All mutations are
// serialized through a single mutex; the countdown is a cooperative
// one-second tick that re-arms itself only while the attempt is active.
type Attempt struct {
	id        uuid.UUID
	studentID int
	quiz      model.Quiz
	questions []model.Question

	mu        sync.Mutex
	state     State
	current   int
	answers   map[uuid.UUID]int
	remaining int
	timer     *time.Timer
	result    *Result

	// onSubmit receives the result exactly once, outside the lock.
	onSubmit func(*Result)
	// onAnswer mirrors each answer selection, best-effort.
	onAnswer func(attemptID uuid.UUID, questionID uuid.UUID, option int)
}

// New constructs an Active attempt from a quiz snapshot and its resolved
// question set. An unresolvable (empty) question set is substituted with
// the fixed fallback set rather than surfaced as an error.
func New(
	quiz model.Quiz,
	questions []model.Question,
	studentID int,
	onSubmit func(*Result),
	onAnswer func(attemptID, questionID uuid.UUID, option int),
) *Attempt {
	if len(questions) == 0 {
		questions = FallbackQuestions(quiz.ID)
	}
	return &Attempt{
		id:        uuid.New(),
		studentID: studentID,
		quiz:      quiz,
		questions: questions,
		state:     StateActive,
		current:   0,
		answers:   make(map[uuid.UUID]int),
		remaining: quiz.DurationMinutes * 60,
		onSubmit:  onSubmit,
		onAnswer:  onAnswer,
	}
}

// ID returns the attempt identifier.
func (a *Attempt) ID() uuid.UUID { return a.id }

// StudentID returns the owning student's identifier.
func (a *Attempt) StudentID() int { return a.studentID }

// Questions returns the question set stripped of correct options.
func (a *Attempt) Questions() []model.QuestionForStudent {
	out := make([]model.QuestionForStudent, len(a.questions))
	for i, q := range a.questions {
		out[i] = q.ForStudent()
	}
	return out
}

// StartClock arms the countdown. Each tick re-arms the next one only
// while the attempt is still active, so transitioning out of Active is
// the only cancellation the timer needs.
func (a *Attempt) StartClock() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateActive || a.timer != nil {
		return
	}
	a.timer = time.AfterFunc(time.Second, a.tick)
}

func (a *Attempt) tick() {
	a.mu.Lock()
	if a.state != StateActive {
		a.mu.Unlock()
		return
	}

	a.remaining--
	if a.remaining <= 0 {
		a.remaining = 0
		res := a.finishLocked(true)
		a.mu.Unlock()
		if a.onSubmit != nil {
			a.onSubmit(res)
		}
		return
	}

	a.timer = time.AfterFunc(time.Second, a.tick)
	a.mu.Unlock()
}

// Tick advances the countdown by one second. Exposed for deterministic
// control in tests and ignored once the attempt leaves Active.
func (a *Attempt) Tick() { a.tick() }

// SelectAnswer upserts the chosen option for a question. A later
// selection for the same question overwrites the earlier one. The option
// index is accepted as-is; the client constrains the range.
func (a *Attempt) SelectAnswer(questionID uuid.UUID, option int) error {
	a.mu.Lock()
	if a.state != StateActive {
		a.mu.Unlock()
		return ErrAlreadySubmitted
	}
	a.answers[questionID] = option
	a.mu.Unlock()

	if a.onAnswer != nil {
		a.onAnswer(a.id, questionID, option)
	}
	return nil
}

// Advance moves to the next question, clamped at the last index.
func (a *Attempt) Advance() int { return a.move(a.currentIndex() + 1) }

// Retreat moves to the previous question, clamped at zero.
func (a *Attempt) Retreat() int { return a.move(a.currentIndex() - 1) }

// JumpTo moves directly to the given index, clamped to [0, lastIndex].
func (a *Attempt) JumpTo(index int) int { return a.move(index) }

func (a *Attempt) currentIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

func (a *Attempt) move(index int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateActive {
		return a.current
	}
	if index < 0 {
		index = 0
	}
	if last := len(a.questions) - 1; index > last {
		index = last
	}
	a.current = index
	return a.current
}

// Submit finishes the attempt. The transition is latched: a duplicate
// call returns ErrAlreadySubmitted and produces no second result.
func (a *Attempt) Submit() (*Result, error) {
	a.mu.Lock()
	if a.state != StateActive {
		res := a.result
		a.mu.Unlock()
		if res != nil {
			return res, ErrAlreadySubmitted
		}
		return nil, ErrAlreadySubmitted
	}
	res := a.finishLocked(false)
	a.mu.Unlock()

	if a.onSubmit != nil {
		a.onSubmit(res)
	}
	return res, nil
}

// finishLocked computes the score and transitions
// Active → Submitting → Submitted. Caller holds the lock.
func (a *Attempt) finishLocked(auto bool) *Result {
	a.state = StateSubmitting
	if a.timer != nil {
		a.timer.Stop()
	}

	score := 0
	answers := make(map[string]int, len(a.answers))
	for _, q := range a.questions {
		if chosen, ok := a.answers[q.ID]; ok && chosen == q.CorrectOption {
			score++
		}
	}
	for qid, chosen := range a.answers {
		answers[qid.String()] = chosen
	}

	total := len(a.questions)
	percentage := 0
	if total > 0 {
		percentage = (score*100 + total/2) / total
	}

	elapsed := a.quiz.DurationMinutes*60 - a.remaining

	a.result = &Result{
		AttemptID:      a.id,
		UserID:         a.studentID,
		QuizID:         a.quiz.ID,
		QuizTitle:      a.quiz.Title,
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		TimeSpent:      FormatSeconds(elapsed),
		Answers:        answers,
		SubmittedAt:    time.Now().UTC(),
		AutoSubmitted:  auto,
	}
	a.state = StateSubmitted
	return a.result
}

// Discard abandons the attempt without producing a result. Nothing is
// persisted; the timer dies with the Active state.
func (a *Attempt) Discard() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateActive {
		return ErrAlreadySubmitted
	}
	a.state = StateSubmitted
	if a.timer != nil {
		a.timer.Stop()
	}
	return nil
}

// Snapshot returns a consistent view of the attempt.
func (a *Attempt) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	answers := make(map[string]int, len(a.answers))
	for qid, chosen := range a.answers {
		answers[qid.String()] = chosen
	}

	return Snapshot{
		ID:               a.id,
		QuizID:           a.quiz.ID,
		QuizTitle:        a.quiz.Title,
		State:            a.state,
		CurrentIndex:     a.current,
		Answers:          answers,
		RemainingSeconds: a.remaining,
		TotalQuestions:   len(a.questions),
		Result:           a.result,
	}
}

// FormatSeconds renders a duration in seconds as MM:SS.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
