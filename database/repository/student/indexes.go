package studentRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStudentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	studentModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "access_token", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tutor_id", Value: 1}}},
	}
	if _, err := r.studentColl.Indexes().CreateMany(ctx, studentModels); err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}

	fileModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "student_id", Value: 1}}},
	}
	if _, err := r.fileColl.Indexes().CreateMany(ctx, fileModels); err != nil {
		return fmt.Errorf("failed to create file indexes: %w", err)
	}

	homeworkModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "student_id", Value: 1}}},
	}
	if _, err := r.homeworkColl.Indexes().CreateMany(ctx, homeworkModels); err != nil {
		return fmt.Errorf("failed to create homework indexes: %w", err)
	}

	submissionModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "homework_id", Value: 1}}},
	}
	if _, err := r.submissionColl.Indexes().CreateMany(ctx, submissionModels); err != nil {
		return fmt.Errorf("failed to create submission indexes: %w", err)
	}
	return nil
}
