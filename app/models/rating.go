package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating is a 1-5 score left by a user on a product. No uniqueness constraint
// exists on (user, product); repeat ratings all count toward the average.
type Rating struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ProductID string    `gorm:"size:36;index;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	Score     int       `gorm:"not null" json:"score"`
	Title     string    `gorm:"size:50" json:"title"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (rt *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}
	return
}

var ratingTitles = map[int]string{
	1: "Not Useful",
	2: "Bad",
	3: "Poor",
	4: "Good",
	5: "Very Good",
}

// TitleForScore derives the display title from the score. Caller-supplied
// titles are always overwritten with this.
func TitleForScore(score int) string {
	return ratingTitles[score]
}
