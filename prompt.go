package pagebrief

import (
	"fmt"
	"strings"
)

// Task selects the generation framing.
type Task string

// Supported tasks.
const (
	TaskSummarize Task = "summarize"
	TaskBrochure  Task = "brochure"
)

// Prompt is an immutable system/user message pair for one LLM invocation.
type Prompt struct {
	System string
	User   string
}

const summarizeSystemPrompt = "You are an assistant that analyzes the contents of a website. " +
	"Your goal is to provide a short, concise summary of the main content, " +
	"ignoring text that appears to be navigation, boilerplate, or advertisements. " +
	"Respond in markdown format. If the website contains news or announcements, " +
	"please highlight the key ones."

const brochureSystemPrompt = "You are an assistant that analyzes the contents of several relevant pages " +
	"from a company website and creates a short brochure about the company for " +
	"prospective customers, investors and recruits. Respond in markdown. " +
	"Include details of company culture, customers and careers/jobs if you have the information."

// BuildPrompt renders the prompt for a task from an aggregated document.
// The company name is used by TaskBrochure and ignored otherwise.
// Pure templating: no network or LLM calls happen here.
func BuildPrompt(doc *Document, task Task, company string) Prompt {
	var sb strings.Builder

	switch task {
	case TaskBrochure:
		fmt.Fprintf(&sb, "You are looking at a company called: %s\n", company)
		sb.WriteString("Here are the contents of its landing page and other relevant pages; ")
		sb.WriteString("use this information to build a short brochure of the company in markdown.\n\n")
	default:
		sb.WriteString("Here are the contents of a website. ")
		sb.WriteString("Please provide a short summary in markdown. ")
		sb.WriteString("Focus on the primary purpose and key information. ")
		sb.WriteString("If it includes significant news or announcements, summarize these too.\n\n")
	}

	for _, section := range doc.Sections {
		fmt.Fprintf(&sb, "## Source: %s\n\n%s\n\n", section.SourceURL, section.Text)
	}

	system := summarizeSystemPrompt
	if task == TaskBrochure {
		system = brochureSystemPrompt
	}

	return Prompt{System: system, User: sb.String()}
}
