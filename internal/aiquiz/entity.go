package aiquiz

// Wire types of the generate-quiz function. Field names follow the JSON the
// web client already sends.

type QuizOptions struct {
	NumQuestions int      `json:"numQuestions,omitempty"`
	Types        []string `json:"types,omitempty"`
	FileURL      string   `json:"fileUrl,omitempty"`
	TitleOnly    bool     `json:"titleOnly,omitempty"`
}

type QuizRequest struct {
	Content string       `json:"content"`
	Options *QuizOptions `json:"options,omitempty"`
}

// Question is the remote representation of a generated item. Answer holds
// the text of the correct option.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Type     string   `json:"type"`
}

type QuizResponse struct {
	Questions []Question `json:"questions"`
	Title     string     `json:"title"`
}

type TitleResponse struct {
	Title string `json:"title"`
}

type SummaryRequest struct {
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (r QuizRequest) options() QuizOptions {
	if r.Options == nil {
		return QuizOptions{}
	}
	return *r.Options
}
