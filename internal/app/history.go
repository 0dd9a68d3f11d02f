package app

// DaySummary is one day of the trailing-history view, with labor cost laid
// over the recorded hours.
type DaySummary struct {
	Date         string
	Tops         float64
	Smalls       float64
	TotalLbs     float64
	TrimmerHours float64
	BuckerHours  float64
	HoursLogged  int
	AvgRate      float64 // tops per trimmer-hour
	LaborCost    float64
	CostPerLb    float64 // blended, labor only
}
