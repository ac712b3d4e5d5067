package dto

// AbsenceType tipo de ausencia según la normativa laboral española.
type AbsenceType string

const (
	AbsenceVacation              AbsenceType = "VACATION"
	AbsenceSickLeaveCommon       AbsenceType = "SICK_LEAVE_COMMON"
	AbsenceSickLeaveProfessional AbsenceType = "SICK_LEAVE_PROFESSIONAL"
	AbsenceAccidentNonWork       AbsenceType = "ACCIDENT_LEAVE_NON_WORK"
	AbsenceAccidentWork          AbsenceType = "ACCIDENT_LEAVE_WORK"
	AbsenceParentalLeave         AbsenceType = "PARENTAL_LEAVE"
	AbsenceNursingLeave          AbsenceType = "NURSING_LEAVE"
	AbsenceMarriage              AbsenceType = "MARRIAGE"
	AbsenceMoving                AbsenceType = "MOVING"
	AbsenceBereavement           AbsenceType = "FAMILY_BEREAVEMENT_HOSPITALIZATION"
	AbsenceTraining              AbsenceType = "TRAINING"
	AbsenceOther                 AbsenceType = "OTHER"
)

// AbsenceStatus estado de revisión de una ausencia.
type AbsenceStatus string

const (
	AbsencePending   AbsenceStatus = "PENDING"
	AbsenceApproved  AbsenceStatus = "APPROVED"
	AbsenceRejected  AbsenceStatus = "REJECTED"
	AbsenceCancelled AbsenceStatus = "CANCELLED"
)

// AbsenceTypeOption entrada del catálogo de tipos con su etiqueta.
type AbsenceTypeOption struct {
	Value AbsenceType `json:"value"`
	Name  string      `json:"name"`
}

// AbsenceResponse una ausencia tal como la devuelve el backend.
type AbsenceResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	CompanyID     string        `json:"companyId"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Type          AbsenceType   `json:"type"`
	WorkdaysCount int           `json:"workdaysCount"`
	Status        AbsenceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	ReviewedByID  string        `json:"reviewedById,omitempty"`
	ReviewedAt    string        `json:"reviewedAt,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	User          *UserBrief    `json:"user,omitempty"`
	ReviewedBy    *Brief        `json:"reviewedBy,omitempty"`
}

// AbsenceStats contadores por estado.
type AbsenceStats struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}

// CreateAbsenceRequest alta de una ausencia.
type CreateAbsenceRequest struct {
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Type      AbsenceType `json:"type"`
	Notes     string      `json:"notes,omitempty"`
}

// ReviewAbsenceRequest aprobación o rechazo por un responsable.
type ReviewAbsenceRequest struct {
	Status AbsenceStatus `json:"status"` // APPROVED o REJECTED
	Notes  string        `json:"notes,omitempty"`
}

// AbsenceFilters filtros opcionales del listado.
type AbsenceFilters struct {
	UserID string
	Status AbsenceStatus
	Year   int
}
