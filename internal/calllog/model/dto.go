package model

// RecordCallRequest represents the request to record one call event.
type RecordCallRequest struct {
	LegislatorName string `json:"legislator_name" binding:"required"`
	BillName       string `json:"bill_name"`
	Issue          string `json:"issue"`
	Outcome        string `json:"outcome"`
}

// RecordCallResponse represents the response after recording a call.
type RecordCallResponse struct {
	Event      CallEvent `json:"event"`
	TotalCalls int64     `json:"total_calls"`
}

// CallCountResponse represents the running call counter.
type CallCountResponse struct {
	TotalCalls int64 `json:"total_calls"`
}

// RecentCallsResponse represents the most recent call events.
type RecentCallsResponse struct {
	Events []CallEvent `json:"events"`
	Total  int         `json:"total"`
}
