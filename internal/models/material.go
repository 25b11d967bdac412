package models

import "time"

// LearningMaterial is an admin-uploaded study resource.
type LearningMaterial struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	Subject      string    `db:"subject" json:"subject"`
	FileURL      string    `db:"file_url" json:"fileUrl"`
	FileType     *string   `db:"file_type" json:"fileType"`
	UploadedByID string    `db:"uploaded_by_id" json:"uploadedById"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// LearningMaterialDetail attaches the uploading user.
type LearningMaterialDetail struct {
	LearningMaterial
	UploadedBy *User `json:"uploadedBy"`
}
