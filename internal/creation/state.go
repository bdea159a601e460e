package creation

// Phase is the state of the creation dialog.
type Phase int

const (
	PhaseIdle       Phase = iota // Waiting for input
	PhaseValidating              // Checking the submitted form
	PhaseGenerating              // Learning path request in flight
	PhaseSuccess                 // Subject appended to the store
	PhaseError                   // Validation or generation failed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseGenerating:
		return "generating"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// User-facing messages.
const (
	ValidationMessage       = "Please provide both subject name and syllabus content"
	GenerationFailedMessage = "Failed to create subject. Please try again."
	SuccessNotice           = "Subject created successfully! AI-powered learning path generated."
)

// Form is the text entered in the creation dialog.
type Form struct {
	Name     string
	Syllabus string
}

// Complete reports whether both fields are filled in.
func (f Form) Complete() bool {
	return f.Name != "" && f.Syllabus != ""
}

// Snapshot is a read-only view of the workflow for rendering.
type Snapshot struct {
	Phase  Phase
	Form   Form
	Error  string
	Notice string
}

// CanSubmit reports whether the submit control should be enabled.
func (s Snapshot) CanSubmit() bool {
	return s.Phase != PhaseGenerating && s.Form.Complete()
}
