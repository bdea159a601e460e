package create

import (
	"github.com/learnyst/learnyst/internal/subject"
)

// generationDoneMsg is sent when the learning path request finishes.
// owner is the dialog that started the request.
type generationDoneMsg struct {
	owner   *CreateScreen
	Subject *subject.Subject
	Err     error
}
