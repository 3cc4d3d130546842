package mcp

type RunCheckInput struct {
	Check string `json:"check"`
}

type RunAllInput struct{}

type ListChecksInput struct{}

type Finding struct {
	Code string `json:"code"`
}

type CheckToolOutput struct {
	Status   string    `json:"status"`
	Findings []Finding `json:"findings"`
	Summary  string    `json:"summary"`
	Report   string    `json:"report"`
}

type CheckInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type ListChecksOutput struct {
	Checks []CheckInfo `json:"checks"`
}
