package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"study-buddy/internal/domain"
	"study-buddy/internal/dto"
	"study-buddy/internal/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Goals behind the progress overview and milestones.
const (
	goalSessions     = 10
	goalQuizzes      = 5
	goalStudyMinutes = 60
	goalCharacters   = 10000
	goalStreakDays   = 3
)

type achievement struct {
	name        string
	description string
	xp          int
	unlocked    func(st progressStats) bool
}

var achievements = []achievement{
	{"First Session", "Complete your first study session", 50,
		func(st progressStats) bool { return st.sessions >= 1 }},
	{"3-Day Streak", "Study for 3 consecutive days", 100,
		func(st progressStats) bool { return st.streak >= 3 }},
	{"Bookworm", "Process 10,000+ characters", 75,
		func(st progressStats) bool { return st.characters >= 10000 }},
	{"Quiz Master", "Complete 5 quizzes", 125,
		func(st progressStats) bool { return st.quizzes >= 5 }},
	{"Speed Learner", "Complete 3 sessions in one day", 150,
		func(st progressStats) bool { return st.busiestDay >= 3 }},
	{"Expert Level", "Use Expert difficulty 5 times", 200,
		func(st progressStats) bool { return st.expertSessions >= 5 }},
}

// ProgressService derives the gamification and analytics views from a workspace.
type ProgressService interface {
	GetProgress(ctx context.Context, workspaceID string) (*dto.ProgressResponse, error)
	GetAnalytics(ctx context.Context, workspaceID string) (*dto.AnalyticsResponse, error)
	// RecordStudy credits a manual study block ("Add to Analytics").
	RecordStudy(ctx context.Context, workspaceID string) (*dto.RewardResponse, error)
}

type progressServiceImpl struct {
	workspace *WorkspaceAccessor
}

func NewProgressService(workspace *WorkspaceAccessor) ProgressService {
	return &progressServiceImpl{workspace: workspace}
}

type progressStats struct {
	sessions       int
	quizzes        int
	characters     int
	streak         int
	busiestDay     int
	expertSessions int
}

func collectStats(ws *domain.Workspace) progressStats {
	perDay := lo.CountValuesBy(ws.History, func(s domain.StudySession) string { return s.Date() })
	return progressStats{
		sessions:   len(ws.History),
		quizzes:    ws.QuizzesGenerated,
		characters: totalCharacters(ws.History),
		streak:     StreakDays(ws.History),
		busiestDay: lo.Max(lo.Values(perDay)),
		expertSessions: lo.CountBy(ws.History, func(s domain.StudySession) bool {
			return strings.EqualFold(s.QuizDifficulty, "Expert")
		}),
	}
}

func (s *progressServiceImpl) GetProgress(ctx context.Context, workspaceID string) (*dto.ProgressResponse, error) {
	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	st := collectStats(ws)

	return &dto.ProgressResponse{
		Level:            ws.Level,
		XP:               ws.XP,
		XPToNextLevel:    domain.XPPerLevel - ws.XP,
		XPProgress:       float64(ws.XP) / domain.XPPerLevel,
		StudyMinutes:     ws.StudyMinutes,
		StreakDays:       st.streak,
		TotalSessions:    st.sessions,
		QuizzesGenerated: st.quizzes,
		Achievements: lo.Map(achievements, func(a achievement, _ int) dto.AchievementResponse {
			return dto.AchievementResponse{
				Name:        a.name,
				Description: a.description,
				XP:          a.xp,
				Unlocked:    a.unlocked(st),
			}
		}),
		Overview: dto.ProgressOverview{
			Sessions:   ratio(st.sessions, goalSessions),
			Quizzes:    ratio(st.quizzes, goalQuizzes),
			StudyTime:  ratio(ws.StudyMinutes, goalStudyMinutes),
			Characters: ratio(st.characters, goalCharacters),
		},
		Milestones: dto.MilestonesResponse{
			SessionsRemaining:   max(0, goalSessions-st.sessions),
			StreakDaysRemaining: max(0, goalStreakDays-st.streak),
			QuizzesRemaining:    max(0, goalQuizzes-st.quizzes),
		},
	}, nil
}

func (s *progressServiceImpl) GetAnalytics(ctx context.Context, workspaceID string) (*dto.AnalyticsResponse, error) {
	ws, err := s.workspace.Load(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	today := s.workspace.now().Format(domain.DateLayout)
	total := totalCharacters(ws.History)

	perDay := lo.CountValuesBy(ws.History, func(s domain.StudySession) string { return s.Date() })
	days := lo.Keys(perDay)
	sort.Strings(days)

	return &dto.AnalyticsResponse{
		TotalSessions:     len(ws.History),
		SessionsToday:     perDay[today],
		TotalCharacters:   total,
		AverageCharacters: total / max(1, len(ws.History)),
		StreakDays:        StreakDays(ws.History),
		Trend: lo.Map(days, func(d string, _ int) dto.DailyCount {
			return dto.DailyCount{Date: d, Sessions: perDay[d]}
		}),
		Difficulties: labelCounts(ws.History, func(s domain.StudySession) string { return s.QuizDifficulty }),
		Levels:       labelCounts(ws.History, func(s domain.StudySession) string { return s.ExplanationLevel }),
	}, nil
}

func (s *progressServiceImpl) RecordStudy(ctx context.Context, workspaceID string) (*dto.RewardResponse, error) {
	var reward dto.RewardResponse
	err := s.workspace.Update(ctx, workspaceID, func(ws *domain.Workspace) error {
		reward = applyReward(ws, domain.XPRecordStudy, domain.MinutesRecordStudy)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if reward.LevelsGained > 0 {
		logger.Get().Info("Workspace levelled up", zap.String("workspace_id", workspaceID), zap.Int("level", reward.Level))
	}
	return &reward, nil
}

// StreakDays counts consecutive calendar days with at least one session, walking back
// from the most recent such day.
func StreakDays(history []domain.StudySession) int {
	if len(history) == 0 {
		return 0
	}
	dates := lo.Uniq(lo.Map(history, func(s domain.StudySession, _ int) string { return s.Date() }))
	sort.Strings(dates)

	streak := 1
	current, _ := time.Parse(domain.DateLayout, dates[len(dates)-1])
	for i := len(dates) - 2; i >= 0; i-- {
		prev, _ := time.Parse(domain.DateLayout, dates[i])
		if current.Sub(prev) != 24*time.Hour {
			break
		}
		streak++
		current = prev
	}
	return streak
}

func totalCharacters(history []domain.StudySession) int {
	return lo.SumBy(history, func(s domain.StudySession) int { return len([]rune(s.Text)) })
}

func labelCounts(history []domain.StudySession, label func(domain.StudySession) string) []dto.LabelCount {
	counts := lo.CountValuesBy(history, label)
	labels := lo.Keys(counts)
	sort.Strings(labels)
	return lo.Map(labels, func(l string, _ int) dto.LabelCount {
		return dto.LabelCount{Label: l, Count: counts[l]}
	})
}

func ratio(value, goal int) float64 {
	return min(float64(value)/float64(goal), 1.0)
}
