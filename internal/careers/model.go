package careers

// CareerPath is one suggested career direction with a learning roadmap.
type CareerPath struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Match          int      `json:"match"`
	Skills         []string `json:"skills"`
	TimeToComplete string   `json:"timeToComplete"`
	AverageSalary  string   `json:"averageSalary"`
	DemandLevel    string   `json:"demandLevel"`
	Roadmap        []string `json:"roadmap"`
}
