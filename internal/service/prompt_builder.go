package service

import (
	"fmt"

	"legal-ai-analyzer/internal/domain"
)

// analysisPromptTemplate is the fixed instruction for the one-shot analysis
// mode. Only the extracted document text is interpolated.
const analysisPromptTemplate = `You are an expert AI legal assistant. Your task is to analyze the following legal document and provide a clear, easy-to-understand summary for a non-lawyer.

**Document Text:**
---
%s
---

**Analysis Required:**
Please structure your response using Markdown with the following format. If a section is not applicable, state "Not found in document."

1.  **Document Summary:** In 2-3 sentences, what is the main purpose of this document?

2.  **Key Parties Involved:**
    *   List all individuals or entities and their roles (e.g., Landlord, Tenant, Lender, Borrower).

3.  **Potential Risks & Red Flags:**
    *   Highlight any clauses that are one-sided, unusual, or could pose a financial or legal risk to a layperson. Explain *why* it's a risk in simple terms.

4.  **Major Obligations & Responsibilities:**
    *   **For Party A (e.g., Tenant):** What are their main duties?
    *   **For Party B (e.g., Landlord):** What are their main duties?
    *   (Continue for all parties)

5.  **Critical Dates & Deadlines:**
    *   List any important dates (e.g., Effective Date, Termination Date, Notice Periods, Payment Due Dates).

6.  **Glossary of Jargon:**
    *   Define 3-5 of the most confusing legal terms found in the document in plain English.

**Disclaimer:** Always conclude your response with: "This is an AI-generated analysis and not a substitute for professional legal advice. Consult with a qualified attorney for any legal concerns."`

// chatInstruction grounds the conversational mode on the attached document.
// The document itself travels alongside as an inline part; no text is
// extracted for this mode.
const chatInstruction = `You are a helpful assistant answering questions about the attached document. Answer using ONLY the content of the provided document. If the answer is not present in the document, say so explicitly instead of guessing.`

// PromptBuilder produces the exact instruction payloads sent to the model.
// It is a pure transformation layer: deterministic for identical inputs and
// never touches the network.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAnalysisPrompt wraps extracted document text in the fixed analysis
// template.
func (b *PromptBuilder) BuildAnalysisPrompt(text string) string {
	return fmt.Sprintf(analysisPromptTemplate, text)
}

// BuildChatMessage prepends the grounding instruction to the user's message.
func (b *PromptBuilder) BuildChatMessage(message string) string {
	return chatInstruction + "\n\nQuestion: " + message
}

// NormalizeHistory translates caller-supplied history into tagged turns,
// preserving order. Role mapping is total via domain.ParseRole.
func (b *PromptBuilder) NormalizeHistory(items []domain.HistoryItem) []domain.ConversationTurn {
	turns := make([]domain.ConversationTurn, 0, len(items))
	for _, item := range items {
		turns = append(turns, domain.ConversationTurn{
			Role:    domain.ParseRole(item.Role),
			Content: item.Content,
		})
	}
	return turns
}
