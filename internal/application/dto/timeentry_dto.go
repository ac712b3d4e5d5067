package dto

// TimeEntryType tipo de fichaje (catálogo del backend).
type TimeEntryType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimeEntry un fichaje cerrado.
type TimeEntry struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	ProjectID string        `json:"projectId"`
	CompanyID string        `json:"companyId"`
	TypeID    string        `json:"typeId"`
	StartedAt string        `json:"startedAt"`
	EndedAt   string        `json:"endedAt"`
	Minutes   int           `json:"minutes"`
	IsOffice  bool          `json:"isOffice"`
	CreatedAt string        `json:"createdAt"`
	User      *UserBrief    `json:"user,omitempty"`
	Project   *ProjectBrief `json:"project,omitempty"`
	Company   *Brief        `json:"company,omitempty"`
	EntryType *TimeEntryType `json:"timeEntryType,omitempty"`
}

// ActiveTimer un fichaje en curso (sin hora de fin).
type ActiveTimer struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	ProjectID string        `json:"projectId"`
	CompanyID string        `json:"companyId"`
	TypeID    string        `json:"typeId"`
	StartedAt string        `json:"startedAt"`
	IsOffice  bool          `json:"isOffice"`
	CreatedAt string        `json:"createdAt"`
	User      *UserBrief    `json:"user,omitempty"`
	Project   *ProjectBrief `json:"project,omitempty"`
	EntryType *TimeEntryType `json:"timeEntryType,omitempty"`
}

// CreateTimeEntryRequest alta manual de un fichaje.
type CreateTimeEntryRequest struct {
	ProjectID string `json:"projectId"`
	TypeID    string `json:"typeId"`
	StartedAt string `json:"startedAt"`
	EndedAt   string `json:"endedAt"`
	Minutes   int    `json:"minutes"`
	IsOffice  bool   `json:"isOffice,omitempty"`
}

// UpdateTimeEntryRequest edición de un fichaje existente.
type UpdateTimeEntryRequest struct {
	ProjectID string `json:"projectId,omitempty"`
	TypeID    string `json:"typeId,omitempty"`
	StartedAt string `json:"startedAt,omitempty"`
	EndedAt   string `json:"endedAt,omitempty"`
	Minutes   int    `json:"minutes,omitempty"`
	IsOffice  *bool  `json:"isOffice,omitempty"`
}

// StartTimerRequest inicio de un fichaje en curso.
type StartTimerRequest struct {
	ProjectID string `json:"projectId"`
	TypeID    string `json:"typeId"`
	IsOffice  bool   `json:"isOffice,omitempty"`
}

// TimeEntryFilters rango del listado (fechas ISO, inclusive).
type TimeEntryFilters struct {
	From   string
	To     string
	UserID string
}
