package employee

type EmployeeResponse struct {
	ID          int64  `json:"id"`
	BadgeNumber string `json:"badge_number"`
	Name        string `json:"name"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		BadgeNumber: e.BadgeNumber,
		Name:        e.Name,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
