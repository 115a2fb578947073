// Package prompt assembles the instruction prompt the generation model
// receives: a fixed HR-assistant preamble, the formatted employee
// context, and the user's question.
package prompt

import "strings"

// Builder builds the generation prompt for one request.
type Builder struct {
	contextBlock string
	question     string
}

func NewBuilder(contextBlock, question string) *Builder {
	return &Builder{
		contextBlock: contextBlock,
		question:     question,
	}
}

func (b *Builder) Build() string {
	var prompt strings.Builder

	b.writePreamble(&prompt)
	b.writeContext(&prompt)
	b.writeQuestion(&prompt)

	return prompt.String()
}

func (b *Builder) writePreamble(prompt *strings.Builder) {
	prompt.WriteString("You are an intelligent HR assistant. ")
	prompt.WriteString("Based on the following employee information, answer the user's query comprehensively. ")
	prompt.WriteString("If the information is not sufficient to answer, state that you don't have enough data. ")
	prompt.WriteString("Always try to provide names of relevant employees and their key attributes.\n\n")
}

func (b *Builder) writeContext(prompt *strings.Builder) {
	prompt.WriteString("Context: ")
	prompt.WriteString(b.contextBlock)
	prompt.WriteString("\n\n")
}

func (b *Builder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("Question: ")
	prompt.WriteString(b.question)
	prompt.WriteString("\nAnswer:")
}
