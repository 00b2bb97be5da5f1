package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/studyforge/planner-api/internal/breakdown"
	"github.com/studyforge/planner-api/internal/domain"
	"github.com/studyforge/planner-api/internal/remote"
)

// breakdownFailureMessage is the per-subject error shown when a breakdown
// fails for any reason. Details go to the log, not the user.
const breakdownFailureMessage = "Failed to break down topic. Please try again."

// Planner is the domain state store for one study-plan session.
// All methods are safe for concurrent use; each one is an atomic state
// transition guarded by a single mutex.
type Planner struct {
	mu sync.Mutex

	store     remote.Gateway
	generator breakdown.Generator
	logger    *slog.Logger

	active   bool
	profile  domain.Profile
	subjects []*domain.Subject
	exams    []domain.Exam
}

// New creates a Planner wired to the two gateways.
func New(store remote.Gateway, generator breakdown.Generator, logger *slog.Logger) (*Planner, error) {
	if store == nil {
		return nil, errors.New("remote gateway cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("breakdown generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{
		store:     store,
		generator: generator,
		logger:    logger,
	}, nil
}

// Wire payload shapes for the persistence endpoint. Transient subject
// flags never appear here; the remote store only sees durable fields.

type loadPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type wireSubject struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	IsBrokenDown bool   `json:"isBrokenDown"`
}

type addSubjectPayload struct {
	Email   string      `json:"email"`
	Subject wireSubject `json:"subject"`
}

type deleteSubjectPayload struct {
	SubjectID string `json:"subjectId"`
}

type addExamPayload struct {
	Email string      `json:"email"`
	Exam  domain.Exam `json:"exam"`
}

type deleteExamPayload struct {
	ExamID string `json:"examId"`
}

type saveSubTopicsPayload struct {
	SubjectID string            `json:"subjectId"`
	SubTopics []domain.SubTopic `json:"subTopics"`
}

type toggleTopicPayload struct {
	SubjectID   string `json:"subjectId"`
	TopicName   string `json:"topicName"`
	IsCompleted bool   `json:"isCompleted"`
}

// loadResult is the LOAD_OR_CREATE_USER response data shape.
type loadResult struct {
	Profile  domain.Profile   `json:"profile"`
	Subjects []domain.Subject `json:"subjects"`
	Exams    []domain.Exam    `json:"exams"`
}

// LoadOrCreateSession loads the plan stored for the email, creating an
// empty one remotely if none exists, and replaces all local state
// wholesale from the response. Fails without touching local state if the
// remote call fails, and rejects the call while a session is active.
func (p *Planner) LoadOrCreateSession(ctx context.Context, email, name string) error {
	if email == "" {
		return domain.ErrEmptyEmail
	}

	p.mu.Lock()
	if p.active {
		p.mu.Unlock()
		return ErrSessionActive
	}
	p.mu.Unlock()

	data, err := p.store.Call(ctx, remote.ActionLoadOrCreateUser, loadPayload{Email: email, Name: name})
	if err != nil {
		return err
	}

	var result loadResult
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("%w: load response: %v", remote.ErrBadEnvelope, err)
	}

	subjects := make([]*domain.Subject, 0, len(result.Subjects))
	for _, s := range result.Subjects {
		loaded := s.Clone()
		loaded.IsLoading = false
		loaded.Error = ""
		if loaded.SubTopics == nil {
			loaded.SubTopics = []domain.SubTopic{}
		}
		subjects = append(subjects, &loaded)
	}

	exams := make([]domain.Exam, len(result.Exams))
	copy(exams, result.Exams)
	sortExams(exams)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active {
		// Another load won while this call was in flight.
		return ErrSessionActive
	}

	p.profile = result.Profile
	p.subjects = subjects
	p.exams = exams
	p.active = true

	p.logger.InfoContext(ctx, "session loaded",
		"email", result.Profile.Email,
		"subjects", len(subjects),
		"exams", len(exams))

	return nil
}

// EndSession clears all session state. No remote call is made; any
// gateway response still in flight resolves as a no-op afterwards.
func (p *Planner) EndSession() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return ErrNoSession
	}

	p.profile = domain.Profile{}
	p.subjects = nil
	p.exams = nil
	p.active = false

	p.logger.Info("session ended")
	return nil
}

// AddSubject validates and persists a new subject, then appends it with
// empty sub-topics. The created subject is returned for the caller's
// immediate use.
func (p *Planner) AddSubject(ctx context.Context, name, description string) (domain.Subject, error) {
	subject, err := domain.NewSubject(name, description)
	if err != nil {
		return domain.Subject{}, err
	}

	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return domain.Subject{}, ErrNoSession
	}
	email := p.profile.Email
	p.mu.Unlock()

	payload := addSubjectPayload{
		Email: email,
		Subject: wireSubject{
			ID:          subject.ID,
			Name:        subject.Name,
			Description: subject.Description,
		},
	}
	if _, err := p.store.Call(ctx, remote.ActionAddSubject, payload); err != nil {
		return domain.Subject{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		// Session ended while the call was in flight; the remote side
		// has the subject, the next load will show it.
		return subject.Clone(), nil
	}

	p.subjects = append(p.subjects, subject)
	return subject.Clone(), nil
}

// DeleteSubject removes the subject and, locally only, every exam that
// references it. The remote store's own cascade behavior is not assumed.
func (p *Planner) DeleteSubject(ctx context.Context, id string) error {
	p.mu.Lock()
	if p.findSubject(id) == nil {
		p.mu.Unlock()
		return ErrSubjectNotFound
	}
	p.mu.Unlock()

	if _, err := p.store.Call(ctx, remote.ActionDeleteSubject, deleteSubjectPayload{SubjectID: id}); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.subjects[:0]
	for _, s := range p.subjects {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	p.subjects = kept

	keptExams := p.exams[:0]
	for _, e := range p.exams {
		if e.SubjectID != id {
			keptExams = append(keptExams, e)
		}
	}
	p.exams = keptExams

	return nil
}

// AddExam validates and persists a new exam, then appends it and restores
// the ascending-by-date ordering of the exam list.
func (p *Planner) AddExam(ctx context.Context, subjectID, date string) (domain.Exam, error) {
	exam, err := domain.NewExam(subjectID, date)
	if err != nil {
		return domain.Exam{}, err
	}

	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return domain.Exam{}, ErrNoSession
	}
	if p.findSubject(subjectID) == nil {
		p.mu.Unlock()
		return domain.Exam{}, ErrSubjectNotFound
	}
	email := p.profile.Email
	p.mu.Unlock()

	if _, err := p.store.Call(ctx, remote.ActionAddExam, addExamPayload{Email: email, Exam: *exam}); err != nil {
		return domain.Exam{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.active {
		return *exam, nil
	}

	p.exams = append(p.exams, *exam)
	sortExams(p.exams)
	return *exam, nil
}

// DeleteExam removes the exam by id.
func (p *Planner) DeleteExam(ctx context.Context, id string) error {
	p.mu.Lock()
	found := false
	for _, e := range p.exams {
		if e.ID == id {
			found = true
			break
		}
	}
	p.mu.Unlock()
	if !found {
		return ErrExamNotFound
	}

	if _, err := p.store.Call(ctx, remote.ActionDeleteExam, deleteExamPayload{ExamID: id}); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.exams[:0]
	for _, e := range p.exams {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.exams = kept
	return nil
}

// BreakdownSubject asks the generative service to decompose the subject,
// persists the resulting sub-topics, and attaches them. The subject's
// IsLoading flag is set for the duration; on any failure the flag resets
// and an error message lands on that subject only. A resolution arriving
// after the subject was deleted or the session ended applies nothing.
func (p *Planner) BreakdownSubject(ctx context.Context, id string) error {
	p.mu.Lock()
	subject := p.findSubject(id)
	if subject == nil {
		p.mu.Unlock()
		return ErrSubjectNotFound
	}
	if subject.IsLoading {
		p.mu.Unlock()
		return ErrBreakdownInFlight
	}
	if subject.IsBrokenDown {
		p.mu.Unlock()
		return ErrAlreadyBrokenDown
	}
	subject.IsLoading = true
	subject.Error = ""
	name, description := subject.Name, subject.Description
	p.mu.Unlock()

	topics, err := p.generator.BreakdownSubject(ctx, name, description)
	if err == nil {
		subTopics := make([]domain.SubTopic, 0, len(topics))
		for _, t := range topics {
			subTopics = append(subTopics, domain.SubTopic{
				Topic:      t.Topic,
				Difficulty: t.Difficulty,
				StudyHours: t.StudyHours,
			})
		}

		_, err = p.store.Call(ctx, remote.ActionSaveSubTopics,
			saveSubTopicsPayload{SubjectID: id, SubTopics: subTopics})
		if err == nil {
			p.mu.Lock()
			defer p.mu.Unlock()

			current := p.findSubject(id)
			if current == nil {
				// Deleted (or session ended) while the calls were in
				// flight; nothing left to attach to.
				return nil
			}
			current.IsLoading = false
			current.IsBrokenDown = true
			current.SubTopics = subTopics
			return nil
		}
	}

	p.logger.ErrorContext(ctx, "subject breakdown failed",
		"subject_id", id,
		"error", err)

	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.findSubject(id)
	if current == nil {
		return err
	}
	current.IsLoading = false
	current.Error = breakdownFailureMessage
	return err
}

// ToggleTopicCompletion flips the completion flag of the first sub-topic
// with the given name, persisting the new value first.
func (p *Planner) ToggleTopicCompletion(ctx context.Context, subjectID, topicName string) error {
	p.mu.Lock()
	subject := p.findSubject(subjectID)
	if subject == nil {
		p.mu.Unlock()
		return ErrSubjectNotFound
	}
	newValue := false
	found := false
	for i := range subject.SubTopics {
		if subject.SubTopics[i].Topic == topicName {
			newValue = !subject.SubTopics[i].IsCompleted
			found = true
			break
		}
	}
	p.mu.Unlock()
	if !found {
		return ErrTopicNotFound
	}

	payload := toggleTopicPayload{SubjectID: subjectID, TopicName: topicName, IsCompleted: newValue}
	if _, err := p.store.Call(ctx, remote.ActionToggleTopicCompletion, payload); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	current := p.findSubject(subjectID)
	if current == nil {
		return nil
	}
	for i := range current.SubTopics {
		if current.SubTopics[i].Topic == topicName {
			current.SubTopics[i].IsCompleted = newValue
			break
		}
	}
	return nil
}

// Snapshot is a deep-copied read view of the session for presentation.
type Snapshot struct {
	Profile  domain.Profile   `json:"profile"`
	Subjects []domain.Subject `json:"subjects"`
	Exams    []domain.Exam    `json:"exams"`
	Active   bool             `json:"active"`
}

// Snapshot returns the current session state. The copy shares nothing
// with the store's internal collections.
func (p *Planner) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	subjects := make([]domain.Subject, 0, len(p.subjects))
	for _, s := range p.subjects {
		subjects = append(subjects, s.Clone())
	}

	exams := make([]domain.Exam, len(p.exams))
	copy(exams, p.exams)

	return Snapshot{
		Profile:  p.profile,
		Subjects: subjects,
		Exams:    exams,
		Active:   p.active,
	}
}

// findSubject returns the subject with the given id, or nil.
// Callers must hold p.mu.
func (p *Planner) findSubject(id string) *domain.Subject {
	for _, s := range p.subjects {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// sortExams restores ascending calendar-date order. The sort is stable,
// so exams on the same date keep their insertion order.
func sortExams(exams []domain.Exam) {
	sort.SliceStable(exams, func(i, j int) bool {
		return exams[i].Date < exams[j].Date
	})
}
