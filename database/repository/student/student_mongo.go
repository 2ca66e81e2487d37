package studentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorhq/database"
	"tutorhq/models"
	"tutorhq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no document matches the query.
var ErrNotFound = errors.New("not found")

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	studentColl    *mongo.Collection
	fileColl       *mongo.Collection
	homeworkColl   *mongo.Collection
	submissionColl *mongo.Collection
}

// NewMongoStudentRepo constructs a new instance of MongoStudentRepo.
func NewMongoStudentRepo() StudentRepository {
	db := database.DB()
	repo := &MongoStudentRepo{
		studentColl:    db.Collection("students"),
		fileColl:       db.Collection("student_files"),
		homeworkColl:   db.Collection("homework"),
		submissionColl: db.Collection("homework_submissions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("student repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStudentRepo) Create(student *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.studentColl.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (r *MongoStudentRepo) GetByID(id, tutorID string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var student models.Student
	if err := r.studentColl.FindOne(ctx, bson.M{"id": id, "tutor_id": tutorID}).Decode(&student); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching student %s: %w", id, err)
	}
	return &student, nil
}

func (r *MongoStudentRepo) GetByAccessToken(token string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var student models.Student
	if err := r.studentColl.FindOne(ctx, bson.M{"access_token": token}).Decode(&student); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching student by token: %w", err)
	}
	return &student, nil
}

func (r *MongoStudentRepo) ListByTutor(tutorID string) ([]models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.studentColl.Find(ctx, bson.M{"tutor_id": tutorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding student: %w", err)
		}
		students = append(students, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return students, nil
}

// Delete removes the student together with their files, homework and
// submissions.
func (r *MongoStudentRepo) Delete(id, tutorID string) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.studentColl.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete student %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	if _, err := r.fileColl.DeleteMany(ctx, bson.M{"student_id": id}); err != nil {
		return fmt.Errorf("failed to delete files for student %s: %w", id, err)
	}
	if _, err := r.submissionColl.DeleteMany(ctx, bson.M{"student_id": id}); err != nil {
		return fmt.Errorf("failed to delete submissions for student %s: %w", id, err)
	}
	if _, err := r.homeworkColl.DeleteMany(ctx, bson.M{"student_id": id}); err != nil {
		return fmt.Errorf("failed to delete homework for student %s: %w", id, err)
	}
	return nil
}

func (r *MongoStudentRepo) AddFile(file *models.StudentFile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.fileColl.InsertOne(ctx, file); err != nil {
		return fmt.Errorf("failed to insert student file: %w", err)
	}
	return nil
}

func (r *MongoStudentRepo) ListFiles(studentID string) ([]models.StudentFile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.fileColl.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching student files: %w", err)
	}
	defer cursor.Close(ctx)

	var files []models.StudentFile
	for cursor.Next(ctx) {
		var f models.StudentFile
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("error decoding student file: %w", err)
		}
		files = append(files, f)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return files, nil
}

func (r *MongoStudentRepo) GetFile(id string) (*models.StudentFile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var f models.StudentFile
	if err := r.fileColl.FindOne(ctx, bson.M{"id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching file %s: %w", id, err)
	}
	return &f, nil
}

func (r *MongoStudentRepo) DeleteFile(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.fileColl.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStudentRepo) AddHomework(hw *models.Homework) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.homeworkColl.InsertOne(ctx, hw); err != nil {
		return fmt.Errorf("failed to insert homework: %w", err)
	}
	return nil
}

func (r *MongoStudentRepo) ListHomework(studentID string) ([]models.Homework, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.homeworkColl.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching homework: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Homework
	for cursor.Next(ctx) {
		var hw models.Homework
		if err := cursor.Decode(&hw); err != nil {
			return nil, fmt.Errorf("error decoding homework: %w", err)
		}
		items = append(items, hw)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return items, nil
}

func (r *MongoStudentRepo) GetHomework(id string) (*models.Homework, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hw models.Homework
	if err := r.homeworkColl.FindOne(ctx, bson.M{"id": id}).Decode(&hw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching homework %s: %w", id, err)
	}
	return &hw, nil
}

func (r *MongoStudentRepo) DeleteHomework(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.homeworkColl.DeleteOne(ctx, bson.M{"id": id, "tutor_id": tutorID})
	if err != nil {
		return fmt.Errorf("failed to delete homework %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := r.submissionColl.DeleteMany(ctx, bson.M{"homework_id": id}); err != nil {
		return fmt.Errorf("failed to delete submissions for homework %s: %w", id, err)
	}
	return nil
}

func (r *MongoStudentRepo) AddSubmission(sub *models.HomeworkSubmission) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.submissionColl.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (r *MongoStudentRepo) ListSubmissions(homeworkID string) ([]models.HomeworkSubmission, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cursor, err := r.submissionColl.Find(ctx, bson.M{"homework_id": homeworkID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var subs []models.HomeworkSubmission
	for cursor.Next(ctx) {
		var s models.HomeworkSubmission
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding submission: %w", err)
		}
		subs = append(subs, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return subs, nil
}
