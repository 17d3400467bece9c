package quiz

import (
	"errors"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz) error
	GetByID(teacherID, id string) (*Quiz, error)
	ListByTeacher(teacherID string) ([]*Quiz, error)
	Delete(teacherID, id string) error

	AddQuestion(q *Question) error
	NextOrderIndex(quizID string) (int, error)
	DeleteQuestion(teacherID, questionID string) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// Create inserts the quiz, its questions and their options in one
// transaction.
func (r *quizRepository) Create(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questions := q.Questions
		if err := tx.Omit("Questions").Create(q).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = q.ID
			if err := createQuestion(tx, &questions[i]); err != nil {
				return err
			}
		}
		q.Questions = questions
		return nil
	})
}

func createQuestion(tx *gorm.DB, q *Question) error {
	if err := tx.Omit("Options").Create(q).Error; err != nil {
		return err
	}
	if len(q.Options) == 0 {
		return nil
	}
	for i := range q.Options {
		q.Options[i].QuestionID = q.ID
	}
	return tx.Create(&q.Options).Error
}

func (r *quizRepository) GetByID(teacherID, id string) (*Quiz, error) {
	var quiz Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("order_index ASC") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("order_index ASC") }).
		Where("teacher_id = ?", teacherID).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByTeacher(teacherID string) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Delete removes options and questions explicitly; sqlite does not enforce
// the cascade unless foreign keys are switched on.
func (r *quizRepository) Delete(teacherID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("teacher_id = ?", teacherID).Delete(&Quiz{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuizNotFound
		}

		questionIDs := tx.Model(&Question{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&QuestionOption{}).Error; err != nil {
			return err
		}
		return tx.Where("quiz_id = ?", id).Delete(&Question{}).Error
	})
}

func (r *quizRepository) AddQuestion(q *Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return createQuestion(tx, q)
	})
}

func (r *quizRepository) NextOrderIndex(quizID string) (int, error) {
	var count int64
	if err := r.db.Model(&Question{}).Where("quiz_id = ?", quizID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *quizRepository) DeleteQuestion(teacherID, questionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		owned := tx.Model(&Quiz{}).Select("id").Where("teacher_id = ?", teacherID)
		res := tx.Where("quiz_id IN (?)", owned).Delete(&Question{}, "id = ?", questionID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return tx.Where("question_id = ?", questionID).Delete(&QuestionOption{}).Error
	})
}
