package request

type QuestionRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Question string `json:"question" binding:"required"`
}

type ReplyRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
