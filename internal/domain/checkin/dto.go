package checkin

import "github.com/cmlabs-hris/overtime-backend-go/internal/pkg/timestamp"

type CheckinResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
}

func ToResponses(events []CheckinEvent) []CheckinResponse {
	out := make([]CheckinResponse, 0, len(events))
	for _, e := range events {
		out = append(out, CheckinResponse{
			EmployeeID: e.EmployeeID,
			Timestamp:  timestamp.Format(e.Timestamp),
		})
	}
	return out
}
