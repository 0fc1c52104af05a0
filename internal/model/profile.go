package model

// UserProfile is collected by the onboarding form and stored serialized in the session.
type UserProfile struct {
	Name         string   `json:"name" validate:"required"`
	Age          int      `json:"age" validate:"min=3,max=25"`
	StudentClass int      `json:"studentClass" validate:"min=2,max=10"`
	Email        string   `json:"email" validate:"required"`
	Phone        string   `json:"phone" validate:"required"`
	Interests    []string `json:"interests"`
	WeakSubjects []string `json:"weakSubjects" validate:"required,min=1,dive,required"`
}
