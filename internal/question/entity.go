package question

// Question is a trivia prompt. Category holds the decimal string form of a
// category id; filters compare against strconv.Itoa(categoryID).
type Question struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"column:question;type:text" json:"question"`
	Answer     string `gorm:"type:text" json:"answer"`
	Category   string `gorm:"type:text;index" json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
