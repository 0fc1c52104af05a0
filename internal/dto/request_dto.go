package dto

type SelectLanguageRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginRequest fields are not bound as required: empty credentials get the form's own error message.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type OnboardingRequest struct {
	Name         string   `json:"name" binding:"required"`
	Age          int      `json:"age" binding:"required,min=3,max=25"`
	StudentClass int      `json:"student_class" binding:"required,min=2,max=10"`
	Phone        string   `json:"phone" binding:"required"`
	Interests    []string `json:"interests"`
	WeakSubjects []string `json:"weak_subjects" binding:"required,min=1,dive,required"`
}

type SelectAnswerRequest struct {
	Option string `json:"option" binding:"required"`
}

type NotesRequest struct {
	Subject string `json:"subject" binding:"required"`
	Chapter string `json:"chapter" binding:"required"`
}
