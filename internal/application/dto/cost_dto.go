package dto

import "github.com/shopspring/decimal"

// UserCostRow desglose mensual de coste por usuario. Los importes se modelan
// con decimal: nada de float para dinero.
type UserCostRow struct {
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
	HourlyCost    decimal.Decimal `json:"hourlyCost"`
	WorkedMinutes int             `json:"workedMinutes"`
	LaborCost     decimal.Decimal `json:"laborCost"`
	AbsenceDays   int             `json:"absenceDays"`
}

// ProjectCostRow distribución del coste mensual por proyecto.
type ProjectCostRow struct {
	ProjectID     string          `json:"projectId"`
	ProjectName   string          `json:"projectName"`
	WorkedMinutes int             `json:"workedMinutes"`
	LaborCost     decimal.Decimal `json:"laborCost"`
}

// MonthlyCostResponse resumen de coste de un mes para la empresa activa.
type MonthlyCostResponse struct {
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	TotalCost  decimal.Decimal  `json:"totalCost"`
	Users      []UserCostRow    `json:"users"`
	Projects   []ProjectCostRow `json:"projects"`
	ClosedAt   string           `json:"closedAt,omitempty"`
	IsClosed   bool             `json:"isClosed"`
}
