package class

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image" json:"image"`
	VideoLink       string             `bson:"video_link" json:"videoLink"`
	InstructorName  string             `bson:"instructor_name" json:"instructorName"`
	InstructorEmail string             `bson:"instructor_email" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int64              `bson:"available_seats" json:"availableSeats"`
	TotalEnrolled   int64              `bson:"total_enrolled" json:"totalEnrolled"`
	Status          string             `bson:"status" json:"status"` // Pending/Active/Rejected
	Reason          string             `bson:"reason" json:"reason"`
	CreateTime      time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime      time.Time          `bson:"update_time" json:"updateTime"`
}
