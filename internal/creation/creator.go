package creation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/learnyst/learnyst/internal/learnpath"
	"github.com/learnyst/learnyst/internal/subject"
)

// Creator drives the subject creation dialog: validation, the learning
// path request and the append to the store. At most one request is in
// flight at a time.
type Creator struct {
	store     *subject.Store
	generator learnpath.Generator
	newID     func() string
	logger    *zap.Logger

	mu            sync.Mutex
	phase         Phase
	form          Form
	accepted      *Form
	errMsg        string
	notice        string
	cancel        context.CancelFunc
	cancelPending bool
}

// Option configures a Creator.
type Option func(*Creator)

// WithIDFunc overrides subject id generation.
func WithIDFunc(fn func() string) Option {
	return func(c *Creator) { c.newID = fn }
}

// WithLogger sets the logger used for workflow events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Creator) { c.logger = l }
}

// NewCreator creates a Creator appending to store and using generator
// for learning paths. New subjects get random UUIDs.
func NewCreator(store *subject.Store, generator learnpath.Generator, opts ...Option) *Creator {
	c := &Creator{
		store:     store,
		generator: generator,
		newID:     uuid.NewString,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("creation")
	return c
}

// Snapshot returns the current workflow state.
func (c *Creator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Phase:  c.phase,
		Form:   c.form,
		Error:  c.errMsg,
		Notice: c.notice,
	}
}

// Edit records the dialog's current text. Any interaction after a
// success or error returns the workflow to idle.
func (c *Creator) Edit(form Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
	if c.phase == PhaseSuccess || c.phase == PhaseError {
		c.phase = PhaseIdle
		c.errMsg = ""
	}
}

// DismissNotice clears the success notice shown on the dashboard.
func (c *Creator) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ""
}

// Submit validates form and, when both fields are present, moves the
// workflow into the generating phase. Follow with Run.
func (c *Creator) Submit(form Form) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseGenerating {
		return ErrBusy
	}

	c.form = form
	c.phase = PhaseValidating

	if !form.Complete() {
		c.phase = PhaseError
		c.errMsg = ValidationMessage
		c.logger.Debug("submission rejected",
			zap.Bool("missing_name", form.Name == ""),
			zap.Bool("missing_syllabus", form.Syllabus == ""),
		)
		return &ValidationError{
			MissingName:     form.Name == "",
			MissingSyllabus: form.Syllabus == "",
		}
	}

	accepted := form
	c.accepted = &accepted
	c.phase = PhaseGenerating
	c.errMsg = ""
	c.notice = ""
	c.cancelPending = false
	return nil
}

// Run performs the learning path request for the accepted submission.
// On success the new subject is appended and returned. On cancellation
// the workflow returns to idle with the form intact.
func (c *Creator) Run(ctx context.Context) (*subject.Subject, error) {
	c.mu.Lock()
	if c.phase != PhaseGenerating || c.accepted == nil {
		c.mu.Unlock()
		return nil, ErrNotSubmitted
	}
	form := *c.accepted
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	if c.cancelPending {
		cancel()
	}
	c.mu.Unlock()
	defer cancel()

	ctx = learnpath.WithPurpose(ctx, "create-subject")
	nodes, err := c.generator.Generate(ctx, learnpath.Input{
		SubjectName: form.Name,
		Syllabus:    form.Syllabus,
	})
	if err == nil {
		// The generator may not be wrapped with validation.
		err = learnpath.Validate(nodes)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancel = nil
	c.accepted = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.phase = PhaseIdle
			c.logger.Info("subject creation cancelled", zap.String("name", form.Name))
			return nil, err
		}
		c.phase = PhaseError
		c.errMsg = GenerationFailedMessage
		c.logger.Warn("subject creation failed", zap.String("name", form.Name), zap.Error(err))
		return nil, &GenerationError{Err: err}
	}

	subj := subject.NewSubject(c.newID(), form.Name, nodes)
	c.store.Append(subj)

	c.phase = PhaseSuccess
	c.form = Form{}
	c.notice = SuccessNotice
	c.logger.Info("subject created",
		zap.String("id", subj.ID),
		zap.String("name", subj.Name),
		zap.Int("topics", subj.TotalTopics),
	)
	return &subj, nil
}

// Create submits form and runs the generation in one call.
func (c *Creator) Create(ctx context.Context, form Form) (*subject.Subject, error) {
	if err := c.Submit(form); err != nil {
		return nil, err
	}
	subj, err := c.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("create subject %q: %w", form.Name, err)
	}
	return subj, nil
}

// Cancel aborts the in-flight generation, if any.
func (c *Creator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseGenerating {
		return
	}
	if c.cancel != nil {
		c.cancel()
		return
	}
	c.cancelPending = true
}
