package conversation

import "InvestPlanner/internal/model"

const (
	greetingText   = "Hello! I am your AI Investment Planner. I can help you create a personalized investment strategy. To get started, may I ask for your monthly income?"
	restartText    = "Restarting... Hello! I am your AI Investment Planner. To get started, what is your monthly income?"
	riskPrompt     = "How much risk are you willing to take?"
	riskReprompt   = "Please select a risk level: Low, Medium, or High. You can type it or pick one of the options."
	goalPrompt     = "What is your primary goal for this investment?"
	goalReprompt   = "Please select a goal: Short-term, Long-term, or Emergency."
	analyzingText  = "Analyzing your profile... 🤖"
	followUpPrompt = "Would you like to understand common concepts or see a growth projection?"
	guidanceText   = "To start investing, open the catalog (/catalog), choose the recommended category, and invest with /invest <id> <amount>."
	helpText       = "You can ask me to 'explain concepts', 'show projection', or 'restart'."
	lostText       = "I'm not sure what you mean. Type 'reset' to start over."
	projectionNote = "Note: This is just an estimation. Market returns vary."
)

var riskOptions = []model.Option{
	{Label: "Low Risk (Safe)", Value: "risk:low"},
	{Label: "Medium Risk (Balanced)", Value: "risk:medium"},
	{Label: "High Risk (Aggressive)", Value: "risk:high"},
}

var goalOptions = []model.Option{
	{Label: "Short Term (1-3 yrs)", Value: "goal:short"},
	{Label: "Long Term (5+ yrs)", Value: "goal:long"},
	{Label: "Emergency Safety", Value: "goal:emergency"},
}

var followUpOptions = []model.Option{
	{Label: "Explain Concepts", Value: "action:concepts"},
	{Label: "Show Projection", Value: "action:projection"},
	{Label: "Restart", Value: "action:reset"},
}

// Concepts is the content of the concepts explainer.
var Concepts = []model.Concept{
	{Term: "Stocks", Meaning: "Owning a small part of a company."},
	{Term: "Mutual Funds", Meaning: "A pool of money from many investors managed by an expert."},
	{Term: "FD", Meaning: "Fixed Deposit. You give money to a bank for a fixed time and get fixed interest."},
	{Term: "SIP", Meaning: "Systematic Investment Plan. Investing a small fixed amount every month."},
}

func options(src []model.Option) []model.Option { return append([]model.Option(nil), src...) }
