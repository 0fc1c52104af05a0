package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SessionResponseDTO reports the flags that decide which screen comes next.
type SessionResponseDTO struct {
	SessionID          string `json:"session_id"`
	View               string `json:"view"`
	LanguageCode       string `json:"language_code"`
	LanguageName       string `json:"language_name"`
	LanguageSelected   bool   `json:"language_selected"`
	LoggedIn           bool   `json:"logged_in"`
	Email              string `json:"email,omitempty"`
	AssessmentComplete bool   `json:"assessment_complete"`
}

type LanguageDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ProfileDTO struct {
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	StudentClass int      `json:"student_class"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Interests    []string `json:"interests"`
	WeakSubjects []string `json:"weak_subjects"`
}

type ChapterDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	HasVideo bool   `json:"has_video"`
	HasNotes bool   `json:"has_notes"`
	HasTest  bool   `json:"has_test"`
}

type SubjectDTO struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Icon     string       `json:"icon"`
	Chapters []ChapterDTO `json:"chapters"`
}

type ClassSubjectsDTO struct {
	StudentClass int      `json:"student_class"`
	Subjects     []string `json:"subjects"`
}

// QuestionViewDTO never carries the correct answer before the test is scored.
type QuestionViewDTO struct {
	Position      int      `json:"position"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answer        *string  `json:"answer,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

type AssessmentViewDTO struct {
	State        string            `json:"state"`
	Language     string            `json:"language,omitempty"`
	Total        int               `json:"total"`
	CurrentIndex int               `json:"current_index"`
	Current      *QuestionViewDTO  `json:"current,omitempty"`
	CanAdvance   bool              `json:"can_advance"`
	IsLast       bool              `json:"is_last"`
	Score        *int              `json:"score,omitempty"`
	Percent      *int              `json:"percent,omitempty"`
	Review       []QuestionViewDTO `json:"review,omitempty"`
	Error        string            `json:"error,omitempty"`
}

type NotesViewDTO struct {
	State     string     `json:"state"`
	Subject   string     `json:"subject,omitempty"`
	Chapter   string     `json:"chapter,omitempty"`
	Language  string     `json:"language,omitempty"`
	Content   string     `json:"content,omitempty"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type DashboardDTO struct {
	Profile  ProfileDTO   `json:"profile"`
	Language LanguageDTO  `json:"language"`
	Subjects []SubjectDTO `json:"subjects"`
	Notes    NotesViewDTO `json:"notes"`
}
