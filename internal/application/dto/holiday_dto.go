package dto

// HolidaySource origen de un festivo: sincronizado desde la API pública o
// introducido a mano.
type HolidaySource string

const (
	HolidayFromAPI    HolidaySource = "API"
	HolidayFromManual HolidaySource = "MANUAL"
)

// HolidayResponse un festivo público o de empresa.
type HolidayResponse struct {
	ID         string        `json:"id"`
	Date       string        `json:"date"`
	Name       string        `json:"name"`
	LocalName  string        `json:"localName,omitempty"`
	Type       string        `json:"type"` // public | company
	IsNational bool          `json:"isNational"`
	RegionCode string        `json:"regionCode,omitempty"`
	Source     HolidaySource `json:"source,omitempty"`
}

// Region comunidad autónoma disponible para filtrar festivos.
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyHolidayResponse festivo propio de la empresa.
type CompanyHolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	IsRecurring bool   `json:"isRecurring"`
	CreatedAt   string `json:"createdAt"`
}

// CreateCompanyHolidayRequest alta de festivo de empresa.
type CreateCompanyHolidayRequest struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	IsRecurring bool   `json:"isRecurring,omitempty"`
}

// SyncHolidaysResponse resultado de sincronizar festivos por año.
type SyncHolidaysResponse struct {
	Success bool `json:"success"`
	Results []struct {
		Year            int `json:"year"`
		HolidaysAdded   int `json:"holidaysAdded"`
		HolidaysUpdated int `json:"holidaysUpdated"`
	} `json:"results"`
}
