package loan

// Step describes one step of the fixed loan approval process.
// Steps are purely descriptive; the client never executes them.
type Step struct {
	Ordinal     int    `json:"ordinal"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var processSteps = []Step{
	{Ordinal: 1, Name: "Document Validation", Description: "Submitted documents are validated"},
	{Ordinal: 2, Name: "Credit Score Check", Description: "The credit score is determined"},
	{Ordinal: 3, Name: "Auto Approve or Manual Review", Description: "Auto Approve (Score >= 700) or Manual Review (Score < 700)"},
	{Ordinal: 4, Name: "Process Complete", Description: "The application has been processed"},
}

// Steps returns the fixed four-step contract of the loan approval process
func Steps() []Step {
	steps := make([]Step, len(processSteps))
	copy(steps, processSteps)
	return steps
}
