package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizgenie-lambda/internal/config"
	"github.com/saulo-duarte/quizgenie-lambda/internal/generation"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, teacherID string, req CreateQuizRequest) (*Quiz, error)
	DeleteQuiz(ctx context.Context, teacherID, quizID string) error
	AddQuestion(ctx context.Context, teacherID, quizID string, req AddQuestionRequest) (*Question, error)
	RemoveQuestion(ctx context.Context, teacherID, questionID string) error
	GetQuizWithQuestions(ctx context.Context, teacherID, quizID string) (*Quiz, error)
	ListQuizzes(ctx context.Context, teacherID string) ([]*Quiz, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) CreateQuiz(ctx context.Context, teacherID string, req CreateQuizRequest) (*Quiz, error) {
	log := config.WithContext(ctx)

	owner, err := uuid.Parse(teacherID)
	if err != nil {
		return nil, fmt.Errorf("teacher id: %w", err)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(req.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	quiz := &Quiz{
		TeacherID:       owner,
		MaterialID:      req.MaterialID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	for i, q := range req.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		quiz.Questions = append(quiz.Questions, fromGenerated(q, i, req.ApplyDifficultyPoints))
	}

	if err := s.repo.Create(quiz); err != nil {
		log.WithError(err).Error("Error creating quiz")
		return nil, err
	}

	log.WithField("quiz_id", quiz.ID.String()).Infof("Quiz created with %d questions", len(quiz.Questions))
	return quiz, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, teacherID, quizID string) error {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if err := s.repo.Delete(teacherID, quizID); err != nil {
		log.WithError(err).Warn("Error deleting quiz")
		return err
	}

	log.Info("Quiz deleted")
	return nil
}

func (s *quizService) AddQuestion(ctx context.Context, teacherID, quizID string, req AddQuestionRequest) (*Question, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	qz, err := s.repo.GetByID(teacherID, quizID)
	if err != nil {
		log.WithError(err).Error("Error fetching quiz")
		return nil, err
	}
	if qz == nil {
		return nil, ErrQuizNotFound
	}
	if err := validateQuestion(req.Question); err != nil {
		return nil, err
	}

	order, err := s.repo.NextOrderIndex(quizID)
	if err != nil {
		return nil, err
	}

	question := fromGenerated(req.Question, order, req.ApplyDifficultyPoints)
	question.QuizID = qz.ID
	if err := s.repo.AddQuestion(&question); err != nil {
		log.WithError(err).Error("Error adding question")
		return nil, err
	}

	log.WithField("question_id", question.ID.String()).Info("Question added")
	return &question, nil
}

func (s *quizService) RemoveQuestion(ctx context.Context, teacherID, questionID string) error {
	log := config.WithContext(ctx).WithField("question_id", questionID)

	if err := s.repo.DeleteQuestion(teacherID, questionID); err != nil {
		log.WithError(err).Warn("Error removing question")
		return err
	}

	log.Info("Question removed")
	return nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, teacherID, quizID string) (*Quiz, error) {
	quiz, err := s.repo.GetByID(teacherID, quizID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Error fetching quiz")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, teacherID string) ([]*Quiz, error) {
	quizzes, err := s.repo.ListByTeacher(teacherID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Error listing quizzes")
		return nil, err
	}
	return quizzes, nil
}

func validateQuestion(q generation.Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if !q.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidQuestion, q.Kind)
	}
	if q.Kind == generation.KindMultipleChoice {
		if len(q.Options) < 2 {
			return fmt.Errorf("%w: multiple-choice needs at least two options", ErrInvalidQuestion)
		}
		if q.CorrectOptionIndex == nil {
			return fmt.Errorf("%w: multiple-choice without correct option", ErrInvalidQuestion)
		}
		if *q.CorrectOptionIndex < 0 || *q.CorrectOptionIndex >= len(q.Options) {
			return fmt.Errorf("%w: correct option out of range", ErrInvalidQuestion)
		}
	}
	return nil
}
