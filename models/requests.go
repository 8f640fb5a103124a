package models

import "strings"

// Request types

type RegisterRequest struct {
	FName    string `json:"fname" validate:"required,max=100"`
	LName    string `json:"lname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,bcryptlen"`
}

type UserExistsRequest struct {
	Email string `json:"email" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Value is a pointer so an explicit empty string can clear a field.
type UpdateDetailRequest struct {
	Field string  `json:"field" validate:"required,detailfield"`
	Value *string `json:"value" validate:"required"`
}

type AddCollegeRequest struct {
	CollegeName string `json:"collegeName" validate:"required,max=200"`
}

type DeleteCollegeRequest struct {
	CollegeID string `json:"collegeId" validate:"required"`
}

type AddQuestionRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// QuestionID is preferred; Question text is accepted from older clients.
type UpdateAnswerRequest struct {
	QuestionID string  `json:"questionId" validate:"required_without=Question"`
	Question   string  `json:"question" validate:"required_without=QuestionID"`
	Answer     *string `json:"answer" validate:"required"`
}

// NormalizeEmail trims and lower-cases an address. Requests with a Normalize
// method are normalized after decoding and before validation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *RegisterRequest) Normalize() {
	r.FName = strings.TrimSpace(r.FName)
	r.LName = strings.TrimSpace(r.LName)
	r.Email = NormalizeEmail(r.Email)
}

func (r *UserExistsRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *AddCollegeRequest) Normalize() {
	r.CollegeName = strings.TrimSpace(r.CollegeName)
}

func (r *AddQuestionRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
}

func (r *UpdateAnswerRequest) Normalize() {
	r.QuestionID = strings.TrimSpace(r.QuestionID)
	r.Question = strings.TrimSpace(r.Question)
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserRef struct {
	ID string `json:"_id"`
}

type UserExistsResponse struct {
	User *UserRef `json:"user"`
}

type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SessionResponse struct {
	User SessionUser `json:"user"`
}

type ProfileResponse struct {
	FName   string  `json:"fname"`
	LName   string  `json:"lname"`
	Email   string  `json:"email"`
	Details Details `json:"details"`
}

type CollegesResponse struct {
	Message  string    `json:"message,omitempty"`
	Colleges []College `json:"colleges"`
}

type CollegeResponse struct {
	CollegeName string     `json:"collegeName"`
	Questions   []Question `json:"questions"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}
