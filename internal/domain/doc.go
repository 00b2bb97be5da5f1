// Package domain defines the core study-planner entities and their
// validation rules: the student Profile, Subjects with their AI-generated
// SubTopics, and Exams. Entities here carry no behavior beyond construction
// and validation; all mutation goes through the planner store.
package domain
