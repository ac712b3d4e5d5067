package dto

// DayStatus estado calculado de un día del calendario laboral.
type DayStatus string

const (
	DayComplete   DayStatus = "COMPLETE"
	DayIncomplete DayStatus = "INCOMPLETE"
	DayAbsence    DayStatus = "ABSENCE"
	DayHoliday    DayStatus = "HOLIDAY"
	DayWeekend    DayStatus = "WEEKEND"
	DayFuture     DayStatus = "FUTURE"
	DayEmpty      DayStatus = "EMPTY"
)

// TimeEntryBrief fichaje resumido dentro de un día de calendario.
type TimeEntryBrief struct {
	ID        string `json:"id"`
	ProjectID string `json:"projectId"`
	TypeID    string `json:"typeId"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt"`
	Minutes   int    `json:"minutes"`
}

// CalendarDay un día del mes con su estado y fichajes.
type CalendarDay struct {
	Date          string           `json:"date"`
	Status        DayStatus        `json:"status"`
	Minutes       int              `json:"minutes"`
	ExpectedHours float64          `json:"expectedHours"`
	Entries       []TimeEntryBrief `json:"entries,omitempty"`
	HolidayName   string           `json:"holidayName,omitempty"`
	AbsenceType   string           `json:"absenceType,omitempty"`
}

// CalendarSummary agregados del mes.
type CalendarSummary struct {
	WorkedMinutes   int `json:"workedMinutes"`
	ExpectedMinutes int `json:"expectedMinutes"`
	CompleteDays    int `json:"completeDays"`
	IncompleteDays  int `json:"incompleteDays"`
	AbsenceDays     int `json:"absenceDays"`
	HolidayCount    int `json:"holidayCount"`
}

// CalendarMonthResponse calendario mensual de un usuario.
type CalendarMonthResponse struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Days    []CalendarDay   `json:"days"`
	Summary CalendarSummary `json:"summary"`
}
