package application

type CreateApplicationRequest struct {
	VacationDate string `json:"vacation_date" binding:"required"`
	Period       string `json:"period" binding:"required,oneof=full_day am pm"`
	Level        int    `json:"level" binding:"required,oneof=1 2 3"`
	Remarks      string `json:"remarks"`
}

type ApplicationResponse struct {
	ID                    int64  `json:"id"`
	StaffID               int64  `json:"staff_id"`
	VacationDate          string `json:"vacation_date"`
	Period                string `json:"period"`
	Level                 int    `json:"level"`
	Status                string `json:"status"`
	Priority              *int   `json:"priority"`
	IsWithinLotteryPeriod bool   `json:"is_within_lottery_period"`
	AppliedAt             string `json:"applied_at"`
	Remarks               string `json:"remarks,omitempty"`
}

type PeriodStatusResponse struct {
	VacationDate string `json:"vacation_date"`
	Phase        string `json:"phase"`
	WindowStart  string `json:"window_start"`
	WindowEnd    string `json:"window_end"`
	IsWithin     bool   `json:"is_within"`
}
