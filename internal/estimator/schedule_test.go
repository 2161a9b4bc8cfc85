package estimator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var scheduleStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestComplexityBuckets(t *testing.T) {
	tests := []struct {
		area float64
		want Complexity
	}{
		{area: 0, want: ComplexityBaixa}, // defaulted to 100
		{area: 50, want: ComplexityBaixa},
		{area: 100, want: ComplexityBaixa}, // strict >, not ≥
		{area: 100.01, want: ComplexityMedia},
		{area: 200, want: ComplexityMedia}, // strict >, not ≥
		{area: 200.01, want: ComplexityAlta},
		{area: 1000, want: ComplexityAlta},
	}
	for _, tt := range tests {
		got := ComplexityFor(ProjectInput{TotalArea: tt.area})
		require.Equal(t, tt.want, got, "area %v", tt.area)
	}
}

func TestComplexityBucketDefaultedArea(t *testing.T) {
	// Area 100 defaults apply before bucketing, so a missing area behaves
	// like 100 m²: baixa, because the boundary is strict.
	require.Equal(t, ComplexityBaixa, ComplexityFor(ProjectInput{}))
}

func TestGenerateScheduleFixedPhases(t *testing.T) {
	wantOrder := []string{"Fundação", "Estrutura", "Alvenaria", "Instalações", "Acabamentos"}

	for _, area := range []float64{0, 80, 100, 150, 200, 250} {
		s := GenerateSchedule(ProjectInput{TotalArea: area, ProjectType: "comercial"}, scheduleStart)
		require.Len(t, s.Tasks, 5)
		for i, task := range s.Tasks {
			require.Equal(t, wantOrder[i], task.Name)
		}
	}
}

func TestGenerateScheduleDateChain(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 150}, scheduleStart)

	require.Equal(t, scheduleStart, s.Tasks[0].StartDate)
	require.Empty(t, s.Tasks[0].Dependencies)

	for i, task := range s.Tasks {
		require.Equal(t, task.StartDate.AddDate(0, 0, task.Duration), task.EndDate)
		if i > 0 {
			require.Equal(t, s.Tasks[i-1].EndDate.AddDate(0, 0, 1), task.StartDate)
			require.Equal(t, []string{s.Tasks[i-1].ID}, task.Dependencies)
		}
	}
}

func TestGenerateScheduleAltaScenario(t *testing.T) {
	// 250 m² lands in the "alta" bucket: Fundação runs 25 days from the
	// start, Estrutura begins one day later and runs 35 days.
	s := GenerateSchedule(ProjectInput{TotalArea: 250}, scheduleStart)
	require.Equal(t, ComplexityAlta, s.Complexity)

	fundacao := s.Tasks[0]
	require.Equal(t, "Fundação", fundacao.Name)
	require.Equal(t, 25, fundacao.Duration)
	require.Equal(t, scheduleStart, fundacao.StartDate)

	estrutura := s.Tasks[1]
	require.Equal(t, "Estrutura", estrutura.Name)
	require.Equal(t, 35, estrutura.Duration)
	require.Equal(t, fundacao.EndDate.AddDate(0, 0, 1), estrutura.StartDate)
}

func TestGenerateScheduleAggregates(t *testing.T) {
	for _, area := range []float64{50, 150, 300} {
		s := GenerateSchedule(ProjectInput{TotalArea: area}, scheduleStart)

		wantDuration := 0
		wantCost := 0.0
		for _, task := range s.Tasks {
			wantDuration += task.Duration
			wantCost += task.Cost
		}
		require.Equal(t, wantDuration, s.TotalDuration)
		require.Equal(t, wantCost, s.TotalCost)
	}
}

func TestScheduleCriticalPathIsFullChain(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 120}, scheduleStart)

	path := s.CriticalPath()
	require.Len(t, path, len(s.Tasks))
	for i, id := range path {
		require.Equal(t, s.Tasks[i].ID, id)
	}
}

func TestScheduleUpdateTaskCascades(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 250}, scheduleStart)

	// Stretch the first phase and expect every downstream task to shift.
	duration := 40
	ok := s.UpdateTask(s.Tasks[0].ID, TaskPatch{Duration: &duration})
	require.True(t, ok)

	require.Equal(t, 40, s.Tasks[0].Duration)
	require.Equal(t, scheduleStart.AddDate(0, 0, 40), s.Tasks[0].EndDate)
	for i := 1; i < len(s.Tasks); i++ {
		require.Equal(t, s.Tasks[i-1].EndDate.AddDate(0, 0, 1), s.Tasks[i].StartDate)
		require.Equal(t, s.Tasks[i].StartDate.AddDate(0, 0, s.Tasks[i].Duration), s.Tasks[i].EndDate)
	}
	require.Equal(t, 40+35+25+20+30, s.TotalDuration)

	require.False(t, s.UpdateTask("no-such-id", TaskPatch{Duration: &duration}))
}

func TestScheduleUpdateTaskStatusOnly(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 120}, scheduleStart)
	endBefore := s.Tasks[4].EndDate

	status := TaskStatusInProgress
	require.True(t, s.UpdateTask(s.Tasks[2].ID, TaskPatch{Status: &status}))
	require.Equal(t, TaskStatusInProgress, s.Tasks[2].Status)
	// A status-only edit must not move any dates.
	require.Equal(t, endBefore, s.Tasks[4].EndDate)
}

func TestScheduleUpdateHeadStartDateShiftsChain(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 120}, scheduleStart)

	newStart := scheduleStart.AddDate(0, 0, 7)
	require.True(t, s.UpdateTask(s.Tasks[0].ID, TaskPatch{StartDate: &newStart}))
	require.Equal(t, newStart, s.Tasks[0].StartDate)
	require.Equal(t, newStart.AddDate(0, 0, s.Tasks[0].Duration), s.Tasks[0].EndDate)
	require.Equal(t, s.Tasks[0].EndDate.AddDate(0, 0, 1), s.Tasks[1].StartDate)
}

func TestScheduleAddTaskJoinsChain(t *testing.T) {
	s := GenerateSchedule(ProjectInput{TotalArea: 120}, scheduleStart)
	tail := s.Tasks[len(s.Tasks)-1]

	added := s.AddTask(ScheduleTask{Name: "Paisagismo", Category: "externo", Duration: 7, Cost: 5000})
	require.NotEmpty(t, added.ID)
	require.Len(t, s.Tasks, 6)
	require.Equal(t, []string{tail.ID}, added.Dependencies)
	require.Equal(t, tail.EndDate.AddDate(0, 0, 1), added.StartDate)
	require.Equal(t, added.StartDate.AddDate(0, 0, 7), added.EndDate)
	require.Equal(t, TaskStatusPlanned, added.Status)
}

func TestGenerateScheduleTruncatesStartToDay(t *testing.T) {
	noisy := time.Date(2026, 3, 2, 17, 45, 12, 999, time.FixedZone("BRT", -3*3600))
	s := GenerateSchedule(ProjectInput{TotalArea: 120}, noisy)
	// 17:45 BRT is 20:45 UTC on the same calendar day.
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), s.Tasks[0].StartDate)
}
