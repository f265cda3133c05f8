package summary

import "strings"

const defaultSharedPrompt = `You are a senior software engineer helping reviewers understand a pull request.
Be factual and concise. Only describe changes that are visible in the diff.`

const defaultInstructions = "The following is a git diff of a list of files.\n" +
	"Please summarize the diff and come up with a name for the pull request along with its description\n" +
	"Do it in the following way:\n" +
	"Write `Pull Request Name:` and then write a name for the pull request\n" +
	"Write `Description:` and then write a bullet pointed summary of the changes as the description\n" +
	"Every bullet point should start with a `*`.\n"

const (
	diffOpen         = "```\n"
	summaryDelimiter = "\n```\n\nSUMMARY:\n"
)

// PromptTemplate holds the fixed text placed ahead of the diff.
type PromptTemplate struct {
	SharedPrompt string `json:"shared_prompt"`
	Instructions string `json:"instructions"`
}

func DefaultPromptTemplate() PromptTemplate {
	return PromptTemplate{SharedPrompt: defaultSharedPrompt, Instructions: defaultInstructions}
}

func (p PromptTemplate) withDefaults() PromptTemplate {
	if strings.TrimSpace(p.SharedPrompt) == "" {
		p.SharedPrompt = defaultSharedPrompt
	}
	if strings.TrimSpace(p.Instructions) == "" {
		p.Instructions = defaultInstructions
	}
	return p
}

// Build returns header + diff + delimiter, ending with the SUMMARY: marker.
func (p PromptTemplate) Build(diff string) string {
	p = p.withDefaults()
	var b strings.Builder
	b.Grow(len(p.SharedPrompt) + len(p.Instructions) + len(diff) + 64)
	b.WriteString(p.SharedPrompt)
	b.WriteString("\n")
	b.WriteString(p.Instructions)
	if !strings.HasSuffix(p.Instructions, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(diffOpen)
	b.WriteString(diff)
	b.WriteString(summaryDelimiter)
	return b.String()
}
