package planner

// unknownSubjectName is the fallback when a subject lookup misses,
// e.g. an exam row whose subject was deleted remotely.
const unknownSubjectName = "Unknown Subject"

// FlatTopic is a sub-topic annotated with its parent subject, as shown in
// the timetable view.
type FlatTopic struct {
	Topic       string  `json:"topic"`
	Difficulty  int     `json:"difficulty"`
	StudyHours  float64 `json:"studyHours"`
	IsCompleted bool    `json:"isCompleted"`
	SubjectID   string  `json:"subjectId"`
	SubjectName string  `json:"subjectName"`
}

// FlattenedTopics returns every sub-topic across all subjects in
// subject-list order then sub-topic order. The result is recomputed from
// current state on each call, never cached.
func (p *Planner) FlattenedTopics() []FlatTopic {
	p.mu.Lock()
	defer p.mu.Unlock()

	var topics []FlatTopic
	for _, s := range p.subjects {
		for _, st := range s.SubTopics {
			topics = append(topics, FlatTopic{
				Topic:       st.Topic,
				Difficulty:  st.Difficulty,
				StudyHours:  st.StudyHours,
				IsCompleted: st.IsCompleted,
				SubjectID:   s.ID,
				SubjectName: s.Name,
			})
		}
	}
	return topics
}

// CompletedCount returns how many sub-topics are completed across all
// subjects.
func (p *Planner) CompletedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	for _, s := range p.subjects {
		for _, st := range s.SubTopics {
			if st.IsCompleted {
				count++
			}
		}
	}
	return count
}

// TotalCount returns the total number of sub-topics across all subjects.
func (p *Planner) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	count := 0
	for _, s := range p.subjects {
		count += len(s.SubTopics)
	}
	return count
}

// SubjectName looks up a subject's display name by id, returning a fixed
// fallback when the id is not present.
func (p *Planner) SubjectName(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if s := p.findSubject(id); s != nil {
		return s.Name
	}
	return unknownSubjectName
}
