package generation

const (
	DefaultNumQuestions = 5
	MaxNumQuestions     = 100
)

// Question is a single generated quiz item. Options and CorrectOptionIndex
// are set only for multiple-choice questions.
type Question struct {
	ID                 string     `json:"id"`
	Kind               Kind       `json:"kind"`
	Prompt             string     `json:"prompt"`
	Options            []string   `json:"options,omitempty"`
	CorrectOptionIndex *int       `json:"correctOptionIndex,omitempty"`
	Difficulty         Difficulty `json:"difficulty"`
	Points             int        `json:"points"`
}

// CorrectOption returns the text of the correct option, or "" when the
// question has none.
func (q Question) CorrectOption() string {
	if q.CorrectOptionIndex == nil {
		return ""
	}
	i := *q.CorrectOptionIndex
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

type Summary struct {
	Title           string   `json:"title"`
	MainPoints      []string `json:"mainPoints"`
	DetailedSummary string   `json:"detailedSummary"`
}

// Request describes one question generation call.
type Request struct {
	Content       string `json:"content"`
	NumQuestions  int    `json:"numQuestions,omitempty"`
	AllowedKinds  []Kind `json:"allowedKinds,omitempty"`
	FileReference string `json:"fileReference,omitempty"`
	TitleOnly     bool   `json:"titleOnly,omitempty"`
}

// WithDefaults fills NumQuestions and AllowedKinds when unset. A negative
// count is left alone so the synthesizer can reject it.
func (r Request) WithDefaults() Request {
	if r.NumQuestions == 0 {
		r.NumQuestions = DefaultNumQuestions
	}
	if len(r.AllowedKinds) == 0 {
		r.AllowedKinds = append([]Kind(nil), AllKinds...)
	}
	return r
}

func intPtr(i int) *int {
	return &i
}
