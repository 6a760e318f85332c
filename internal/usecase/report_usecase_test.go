package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-backend/internal/model"
)

func closedSession(employeeID, date string, hours float64) model.AttendanceSession {
	return model.AttendanceSession{EmployeeID: employeeID, Date: date, HoursWorked: &hours}
}

func TestSummarize(t *testing.T) {
	employees := []model.Employee{
		{EmployeeID: "EMP001", Name: "Jane Doe"},
		{EmployeeID: "EMP002", Name: "John Roe"},
	}
	sessions := []model.AttendanceSession{
		closedSession("EMP001", "2026-08-01", 8.0),
		closedSession("EMP001", "2026-08-02", 7.5),
		closedSession("EMP001", "2026-08-03", 8.25),
		closedSession("EMP002", "2026-08-01", 6.0),
	}

	summaries := Summarize(sessions, employees)
	require.Len(t, summaries, 2)

	assert.Equal(t, "EMP001", summaries[0].EmployeeID)
	assert.Equal(t, "Jane Doe", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].TotalDays)
	assert.Equal(t, 23.75, summaries[0].TotalHours)
	assert.Equal(t, 7.92, summaries[0].AverageHoursPerDay)

	assert.Equal(t, 1, summaries[1].TotalDays)
	assert.Equal(t, 6.0, summaries[1].TotalHours)
	assert.Equal(t, 6.0, summaries[1].AverageHoursPerDay)
}

func TestSummarizeEmployeeWithoutSessions(t *testing.T) {
	employees := []model.Employee{{EmployeeID: "EMP003", Name: "New Hire"}}

	summaries := Summarize(nil, employees)
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].TotalDays)
	assert.Equal(t, 0.0, summaries[0].TotalHours)
	assert.Equal(t, 0.0, summaries[0].AverageHoursPerDay)
}

func TestSummarizeOpenSessionCountsDayNotHours(t *testing.T) {
	employees := []model.Employee{{EmployeeID: "EMP001", Name: "Jane Doe"}}
	sessions := []model.AttendanceSession{
		closedSession("EMP001", "2026-08-01", 8.0),
		{EmployeeID: "EMP001", Date: "2026-08-02"}, // still open
	}

	summaries := Summarize(sessions, employees)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].TotalDays)
	assert.Equal(t, 8.0, summaries[0].TotalHours)
	assert.Equal(t, 4.0, summaries[0].AverageHoursPerDay)
}

func TestSummarizeIgnoresUnlistedEmployees(t *testing.T) {
	employees := []model.Employee{{EmployeeID: "EMP001", Name: "Jane Doe"}}
	sessions := []model.AttendanceSession{
		closedSession("EMP001", "2026-08-01", 8.0),
		closedSession("FORMER", "2026-08-01", 8.0),
	}

	summaries := Summarize(sessions, employees)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].TotalDays)
}
