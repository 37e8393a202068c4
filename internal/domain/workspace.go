package domain

import (
	"context"
	"errors"
	"time"
)

// DateLayout is the calendar-day format used for streaks and per-day statistics.
const DateLayout = "2006-01-02"

// XP and study-time rewards per action.
const (
	XPPerLevel = 100

	XPGenerateAll = 15
	XPExplainOnly = 5
	XPQuizOnly    = 8
	XPRecordStudy = 10

	MinutesGenerateAll = 10
	MinutesRecordStudy = 15
)

// ErrWorkspaceNotFound is returned by a WorkspaceStore when the id is unknown or expired.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// StudySession is one generation run: the pasted text and what the agents produced for it.
type StudySession struct {
	ID               string    `json:"id"`
	Text             string    `json:"text"`
	Explanation      string    `json:"explanation"`
	Quiz             string    `json:"quiz"`
	ExplanationLevel string    `json:"level"`
	QuizDifficulty   string    `json:"difficulty"`
	LearningMode     string    `json:"mode"`
	NumQuestions     int       `json:"num_questions"`
	Degraded         bool      `json:"degraded"`
	CreatedAt        time.Time `json:"created_at"`
}

// Date returns the calendar day the session was created on.
func (s StudySession) Date() string {
	return s.CreatedAt.Format(DateLayout)
}

// StudySettings are the options the user picked for the most recent generation.
type StudySettings struct {
	Level        string `json:"level"`
	Difficulty   string `json:"difficulty"`
	Mode         string `json:"mode"`
	NumQuestions int    `json:"num_questions"`
}

// Workspace is the state owned by one browser session. It replaces the dashboard's
// process-wide globals and is passed explicitly to every operation.
type Workspace struct {
	ID               string         `json:"id"`
	History          []StudySession `json:"history"`
	DraftText        string         `json:"draft_text"`
	LastExplanation  string         `json:"last_explanation"`
	LastQuiz         string         `json:"last_quiz"`
	LastSessionID    string         `json:"last_session_id"`
	LastSettings     StudySettings  `json:"last_settings"`
	XP               int            `json:"xp"`
	Level            int            `json:"level"`
	StudyMinutes     int            `json:"study_minutes"`
	QuizzesGenerated int            `json:"quizzes_generated"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func NewWorkspace(id string, now time.Time) *Workspace {
	return &Workspace{
		ID:        id,
		History:   []StudySession{},
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy that shares no slices with w.
func (w *Workspace) Clone() *Workspace {
	c := *w
	c.History = make([]StudySession, len(w.History))
	copy(c.History, w.History)
	return &c
}

// AppendSession adds s to the end of the history. History only grows through here.
func (w *Workspace) AppendSession(s StudySession) {
	w.History = append(w.History, s)
	w.LastSessionID = s.ID
}

// FindSession returns a pointer into the history so callers can fill in agent output.
func (w *Workspace) FindSession(id string) (*StudySession, bool) {
	for i := range w.History {
		if w.History[i].ID == id {
			return &w.History[i], true
		}
	}
	return nil, false
}

// DeleteSession removes one session, keeping the order of the rest.
func (w *Workspace) DeleteSession(id string) bool {
	for i := range w.History {
		if w.History[i].ID == id {
			w.History = append(w.History[:i], w.History[i+1:]...)
			if w.LastSessionID == id {
				w.LastSessionID = ""
			}
			return true
		}
	}
	return false
}

// ClearHistory drops every session together with the quiz counter derived from them.
func (w *Workspace) ClearHistory() {
	w.History = []StudySession{}
	w.LastSessionID = ""
	w.QuizzesGenerated = 0
}

// ResetResults starts a fresh session in the UI without touching history or XP.
func (w *Workspace) ResetResults() {
	w.DraftText = ""
	w.LastExplanation = ""
	w.LastQuiz = ""
}

// AwardXP adds points and converts every full XPPerLevel into a level.
// It reports how many levels were gained.
func (w *Workspace) AwardXP(points int) int {
	if w.Level < 1 {
		w.Level = 1
	}
	w.XP += points
	gained := 0
	for w.XP >= XPPerLevel {
		w.XP -= XPPerLevel
		w.Level++
		gained++
	}
	return gained
}

func (w *Workspace) AddStudyMinutes(minutes int) {
	w.StudyMinutes += minutes
}

// WorkspaceStore persists workspaces for the lifetime of a browser session.
// Implementations must not write to disk.
type WorkspaceStore interface {
	Create(ctx context.Context, ws *Workspace) error
	// Get returns ErrWorkspaceNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*Workspace, error)
	Save(ctx context.Context, ws *Workspace) error
	Delete(ctx context.Context, id string) error
}
