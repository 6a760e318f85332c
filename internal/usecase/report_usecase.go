package usecase

import "attendance-backend/internal/model"

// EmployeeSummary is one row of the per-period attendance report.
type EmployeeSummary struct {
	EmployeeID         string  `json:"employee_id"`
	Name               string  `json:"name"`
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}

// Summarize derives per-employee totals from the given sessions. It is pure:
// no I/O, deterministic output ordered like the employees slice. Sessions
// still open contribute a worked day but zero hours, and sessions for
// employees outside the list are ignored.
func Summarize(sessions []model.AttendanceSession, employees []model.Employee) []EmployeeSummary {
	summaries := make([]EmployeeSummary, len(employees))
	index := make(map[string]int, len(employees))
	for i, emp := range employees {
		summaries[i] = EmployeeSummary{EmployeeID: emp.EmployeeID, Name: emp.Name}
		index[emp.EmployeeID] = i
	}

	hours := make([]float64, len(employees))
	for _, s := range sessions {
		i, ok := index[s.EmployeeID]
		if !ok {
			continue
		}
		summaries[i].TotalDays++
		if s.HoursWorked != nil {
			hours[i] += *s.HoursWorked
		}
	}

	for i := range summaries {
		summaries[i].TotalHours = round2(hours[i])
		if summaries[i].TotalDays > 0 {
			summaries[i].AverageHoursPerDay = round2(hours[i] / float64(summaries[i].TotalDays))
		}
	}

	return summaries
}
