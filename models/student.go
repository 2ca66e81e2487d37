package models

import "time"

// Uploader values for student files.
const (
	UploadedByTutor   = "tutor"
	UploadedByStudent = "student"
)

// Student is a roster entry. The access token is the student's only portal
// credential; it is generated server-side and never changes.
type Student struct {
	ID          string    `bson:"id" json:"id"`
	TutorID     string    `bson:"tutor_id" json:"tutorId"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	AccessToken string    `bson:"access_token" json:"accessToken"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// StudentFile references an uploaded file in object storage.
type StudentFile struct {
	ID         string    `bson:"id" json:"id"`
	TutorID    string    `bson:"tutor_id" json:"tutorId"`
	StudentID  string    `bson:"student_id" json:"studentId"`
	StorageID  string    `bson:"storage_id" json:"storageId"`
	Filename   string    `bson:"filename" json:"filename"`
	FileSize   int64     `bson:"file_size,omitempty" json:"fileSize,omitempty"`
	MimeType   string    `bson:"mime_type,omitempty" json:"mimeType,omitempty"`
	UploadedBy string    `bson:"uploaded_by" json:"uploadedBy"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// Homework is an assignment from a tutor to a student.
type Homework struct {
	ID           string     `bson:"id" json:"id"`
	TutorID      string     `bson:"tutor_id" json:"tutorId"`
	StudentID    string     `bson:"student_id" json:"studentId"`
	Title        string     `bson:"title" json:"title"`
	Instructions string     `bson:"instructions,omitempty" json:"instructions,omitempty"`
	DueDate      *time.Time `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	CreatedAt    time.Time  `bson:"created_at" json:"createdAt"`
}

// HomeworkSubmission is a student's uploaded answer to a homework item.
type HomeworkSubmission struct {
	ID          string    `bson:"id" json:"id"`
	HomeworkID  string    `bson:"homework_id" json:"homeworkId"`
	StudentID   string    `bson:"student_id" json:"studentId"`
	StorageID   string    `bson:"storage_id" json:"storageId"`
	Filename    string    `bson:"filename" json:"filename"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submittedAt"`
}
