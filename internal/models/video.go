package models

import "time"

// LectureVideo is an admin-uploaded recorded lecture, optionally linked
// to a tutor. The tutor link is nulled out when the tutor is deleted.
type LectureVideo struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  *string   `db:"description" json:"description"`
	Subject      string    `db:"subject" json:"subject"`
	VideoURL     string    `db:"video_url" json:"videoUrl"`
	ThumbnailURL *string   `db:"thumbnail_url" json:"thumbnailUrl"`
	Duration     *string   `db:"duration" json:"duration"`
	TutorID      *string   `db:"tutor_id" json:"tutorId"`
	UploadedByID string    `db:"uploaded_by_id" json:"uploadedById"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// LectureVideoDetail attaches the tutor and uploading user.
type LectureVideoDetail struct {
	LectureVideo
	Tutor      *Tutor `json:"tutor"`
	UploadedBy *User  `json:"uploadedBy"`
}
