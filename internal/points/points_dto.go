package points

// PointsSummaryResponse serializes decimal point values as strings so
// fractional costs survive the JSON round trip unchanged.
type PointsSummaryResponse struct {
	FiscalYear int    `json:"fiscal_year"`
	Level1     string `json:"level1_consumed"`
	Level2     string `json:"level2_consumed"`
	Level3     string `json:"level3_consumed"`
	Total      string `json:"total_consumed"`
	Max        string `json:"max_points"`
	Remaining  string `json:"remaining_points"`
}

func mapToResponse(s Summary, fiscalYear int) PointsSummaryResponse {
	return PointsSummaryResponse{
		FiscalYear: fiscalYear,
		Level1:     s.Level1.String(),
		Level2:     s.Level2.String(),
		Level3:     s.Level3.String(),
		Total:      s.Total.String(),
		Max:        s.Max.String(),
		Remaining:  s.Remaining.String(),
	}
}
