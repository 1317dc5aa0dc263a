package settings

type SettingsResponse struct {
	LotteryPeriodMonths   int    `json:"lottery_period_months"`
	LotteryPeriodStartDay int    `json:"lottery_period_start_day"`
	LotteryPeriodEndDay   int    `json:"lottery_period_end_day"`
	MaxAnnualLeavePoints  string `json:"max_annual_leave_points"`
	Level1Points          string `json:"level1_points"`
	Level2Points          string `json:"level2_points"`
	Level3Points          string `json:"level3_points"`
	CurrentFiscalYear     int    `json:"current_fiscal_year"`
}

func mapToResponse(s Snapshot) SettingsResponse {
	return SettingsResponse{
		LotteryPeriodMonths:   s.LotteryPeriodMonths,
		LotteryPeriodStartDay: s.LotteryPeriodStartDay,
		LotteryPeriodEndDay:   s.LotteryPeriodEndDay,
		MaxAnnualLeavePoints:  s.MaxAnnualLeavePoints.String(),
		Level1Points:          s.Level1Points.String(),
		Level2Points:          s.Level2Points.String(),
		Level3Points:          s.Level3Points.String(),
		CurrentFiscalYear:     s.CurrentFiscalYear,
	}
}
