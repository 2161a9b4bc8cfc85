package estimator

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the execution state of a schedule task. It is set directly
// by the user; there is no workflow engine behind it.
type TaskStatus string

// Task statuses.
const (
	TaskStatusPlanned    TaskStatus = "planned"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ScheduleTask is one phase of the derived construction schedule. Dates are
// day-granular; EndDate is always StartDate + Duration days.
type ScheduleTask struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Color        string     `json:"color"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Duration     int        `json:"duration"`
	Dependencies []string   `json:"dependencies"`
	Cost         float64    `json:"cost"`
	Status       TaskStatus `json:"status"`
}

// Schedule is the full derived schedule with its aggregates.
type Schedule struct {
	Tasks         []ScheduleTask `json:"tasks"`
	Complexity    Complexity     `json:"complexity"`
	TotalDuration int            `json:"total_duration"`
	TotalCost     float64        `json:"total_cost"`
}

// TaskPatch carries partial edits to a schedule task. Nil fields are left
// untouched. Changing Duration or StartDate re-chains every downstream task.
type TaskPatch struct {
	Name      *string
	Category  *string
	Color     *string
	StartDate *time.Time
	Duration  *int
	Cost      *float64
	Status    *TaskStatus
}

// The five phases, in build order. The set and order are fixed: no phase is
// ever skipped regardless of project type.
var schedulePhases = []struct {
	name     string
	category string
	color    string
}{
	{name: "Fundação", category: "estrutural", color: "#8B5E3C"},
	{name: "Estrutura", category: "estrutural", color: "#6B7280"},
	{name: "Alvenaria", category: "vedação", color: "#D97706"},
	{name: "Instalações", category: "instalações", color: "#2563EB"},
	{name: "Acabamentos", category: "acabamento", color: "#16A34A"},
}

// durationTable maps complexity bucket to per-phase durations, in days,
// following the phase order above.
var durationTable = map[Complexity][5]int{
	ComplexityBaixa: {10, 15, 12, 10, 15},
	ComplexityMedia: {15, 25, 18, 15, 20},
	ComplexityAlta:  {25, 35, 25, 20, 30},
}

// costTable maps complexity bucket to per-phase costs in BRL. These are flat
// per-bucket constants, independent of the budget's quantity × price
// composition.
var costTable = map[Complexity][5]float64{
	ComplexityBaixa: {12000, 18000, 15000, 14000, 16000},
	ComplexityMedia: {22000, 35000, 26000, 24000, 30000},
	ComplexityAlta:  {40000, 65000, 48000, 42000, 55000},
}

// GenerateSchedule derives the phase schedule for a project, chained from
// the given start date. Each phase starts one day after the previous phase
// ends, producing a single linear critical path. Never fails.
func GenerateSchedule(p ProjectInput, start time.Time) *Schedule {
	complexity := ComplexityFor(p)
	durations := durationTable[complexity]
	costs := costTable[complexity]

	day := truncateToDay(start)
	tasks := make([]ScheduleTask, 0, len(schedulePhases))
	for i, phase := range schedulePhases {
		task := ScheduleTask{
			ID:        uuid.NewString(),
			Name:      phase.name,
			Category:  phase.category,
			Color:     phase.color,
			StartDate: day,
			EndDate:   day.AddDate(0, 0, durations[i]),
			Duration:  durations[i],
			Cost:      costs[i],
			Status:    TaskStatusPlanned,
		}
		if i > 0 {
			task.Dependencies = []string{tasks[i-1].ID}
		}
		tasks = append(tasks, task)
		day = task.EndDate.AddDate(0, 0, 1)
	}

	s := &Schedule{Tasks: tasks, Complexity: complexity}
	s.recomputeAggregates()
	return s
}

// Rechain re-derives the date chain: the first task keeps its start date,
// every later task starts one day after its predecessor ends, and each end
// date is start + duration. Aggregates are recomputed afterwards.
func (s *Schedule) Rechain() {
	for i := range s.Tasks {
		if i > 0 {
			s.Tasks[i].StartDate = s.Tasks[i-1].EndDate.AddDate(0, 0, 1)
			s.Tasks[i].Dependencies = []string{s.Tasks[i-1].ID}
		}
		s.Tasks[i].EndDate = s.Tasks[i].StartDate.AddDate(0, 0, s.Tasks[i].Duration)
	}
	s.recomputeAggregates()
}

func (s *Schedule) recomputeAggregates() {
	s.TotalDuration = 0
	s.TotalCost = 0
	for i := range s.Tasks {
		s.TotalDuration += s.Tasks[i].Duration
		s.TotalCost += s.Tasks[i].Cost
	}
	s.TotalCost = round2(s.TotalCost)
}

// UpdateTask applies a partial edit to the task with the given ID and then
// re-chains downstream dates, so shrinking or growing one phase shifts every
// later phase. It reports whether the task was found.
func (s *Schedule) UpdateTask(id string, patch TaskPatch) bool {
	for i := range s.Tasks {
		if s.Tasks[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.Tasks[i].Name = *patch.Name
		}
		if patch.Category != nil {
			s.Tasks[i].Category = *patch.Category
		}
		if patch.Color != nil {
			s.Tasks[i].Color = *patch.Color
		}
		if patch.StartDate != nil && i == 0 {
			// Only the chain head has a free start date; the rest are derived.
			s.Tasks[i].StartDate = truncateToDay(*patch.StartDate)
		}
		if patch.Duration != nil && *patch.Duration > 0 {
			s.Tasks[i].Duration = *patch.Duration
		}
		if patch.Cost != nil {
			s.Tasks[i].Cost = *patch.Cost
		}
		if patch.Status != nil {
			s.Tasks[i].Status = *patch.Status
		}
		s.Rechain()
		return true
	}
	return false
}

// AddTask appends a task to the end of the chain, linking it to the current
// tail, and re-chains. The task's start date is derived from its
// predecessor; an ID is assigned when absent.
func (s *Schedule) AddTask(task ScheduleTask) ScheduleTask {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = TaskStatusPlanned
	}
	if task.Duration <= 0 {
		task.Duration = 1
	}
	if len(s.Tasks) == 0 && task.StartDate.IsZero() {
		task.StartDate = truncateToDay(time.Now().UTC())
	}
	s.Tasks = append(s.Tasks, task)
	s.Rechain()
	return s.Tasks[len(s.Tasks)-1]
}

// CriticalPath returns the ordered task IDs. The chain is strictly linear,
// so the critical path is the whole schedule.
func (s *Schedule) CriticalPath() []string {
	ids := make([]string, len(s.Tasks))
	for i := range s.Tasks {
		ids[i] = s.Tasks[i].ID
	}
	return ids
}

// truncateToDay normalizes a timestamp to midnight UTC.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
