// Package composer merges the database and online half-answers into one
// attributed narrative. Its five-branch structure is load-bearing: every
// branch has a distinct user-visible meaning (merged, database-only,
// sources-but-no-summary, online-only, nothing) and must stay separate.
package composer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"zeus-ai-be/internal/constant"
	"zeus-ai-be/pkg/llm"
	"zeus-ai-be/pkg/search"
)

type Composer struct {
	llmProvider llm.LLMProvider
	logger      *log.Logger
}

func NewComposer(llmProvider llm.LLMProvider, logger *log.Logger) *Composer {
	return &Composer{
		llmProvider: llmProvider,
		logger:      logger,
	}
}

// Compose handles every combination of which sources fired.
func (c *Composer) Compose(ctx context.Context, query string, db *search.DatabaseResult, online *search.OnlineResult) *search.Composition {
	dbIDs := search.SourceIDs(db.Sources)
	onlineIDs := search.SourceIDs(online.Sources)

	switch {
	case db.Answer != "" && online.Answer != "":
		return c.merge(ctx, query, db, online, dbIDs, onlineIDs)

	case db.Answer != "":
		return &search.Composition{
			CombinedAnswer: db.Answer,
			Sections: []search.AnswerSection{
				{Text: db.Answer, SourceType: search.SourceDatabase, SourceIDs: dbIDs},
			},
		}

	case len(db.Sources) > 0:
		// Retrieval found something the answerer could not summarize. The
		// sources still ship so the UI can show "we looked, we have
		// sources" as distinct from "we found nothing".
		return &search.Composition{
			CombinedAnswer: constant.AnswerDatabaseIncomplete,
			Sections: []search.AnswerSection{
				{Text: constant.AnswerDatabaseIncomplete, SourceType: search.SourceDatabase, SourceIDs: dbIDs},
			},
		}

	case online.Answer != "":
		// The marker stays visible to distinguish a research-only answer
		// from a database-only one.
		return &search.Composition{
			CombinedAnswer: constant.MarkerOnline + " " + online.Answer,
			Sections: []search.AnswerSection{
				{Text: online.Answer, SourceType: search.SourceOnline, SourceIDs: onlineIDs},
			},
		}

	default:
		return &search.Composition{
			CombinedAnswer: constant.AnswerUnavailable,
			Sections: []search.AnswerSection{
				{Text: constant.AnswerUnavailable, SourceType: search.SourceCombined, SourceIDs: []string{}},
			},
		}
	}
}

// merge asks the model to weave both answers into one narrative with every
// sentence attributed through the marker protocol. A transport failure
// degrades to literal concatenation with exactly two sections.
func (c *Composer) merge(ctx context.Context, query string, db *search.DatabaseResult, online *search.OnlineResult, dbIDs, onlineIDs []string) *search.Composition {
	prompt := buildMergePrompt(query, db.Answer, online.Answer)

	combined, err := c.llmProvider.Generate(ctx, prompt, llm.WithMaxTokens(4096))
	if err != nil {
		c.logger.Printf("[COMPOSER] Merge call failed, concatenating: %v", err)
		return &search.Composition{
			CombinedAnswer: db.Answer + constant.CombinedAnswerSeparator + online.Answer,
			Sections: []search.AnswerSection{
				{Text: db.Answer, SourceType: search.SourceDatabase, SourceIDs: dbIDs},
				{Text: online.Answer, SourceType: search.SourceOnline, SourceIDs: onlineIDs},
			},
		}
	}

	return &search.Composition{
		CombinedAnswer: combined,
		Sections:       SplitSections(combined, dbIDs, onlineIDs),
	}
}

func buildMergePrompt(query, dbAnswer, onlineAnswer string) string {
	var prompt strings.Builder

	prompt.WriteString("Combine these two answers into one cohesive response.\n")
	prompt.WriteString("The first answer is from a private database, the second is from public web research.\n")
	prompt.WriteString("Create a unified answer that flows naturally and cites sources appropriately.\n\n")

	prompt.WriteString("Database Answer:\n")
	prompt.WriteString(dbAnswer)
	prompt.WriteString("\n\nOnline Research Answer:\n")
	prompt.WriteString(onlineAnswer)
	prompt.WriteString("\n\nUser's Original Question: ")
	prompt.WriteString(query)

	prompt.WriteString("\n\nIMPORTANT: When writing the combined answer, you MUST clearly mark which parts come from which source:\n")
	prompt.WriteString(fmt.Sprintf("- Use %s at the START of any sentence or paragraph that uses information from the database\n", constant.MarkerDatabase))
	prompt.WriteString(fmt.Sprintf("- Use %s at the START of any sentence or paragraph that uses information from the online research\n", constant.MarkerOnline))
	prompt.WriteString("- You can use these markers multiple times throughout your answer\n")
	prompt.WriteString("- Make sure every piece of information is clearly attributed\n\n")

	prompt.WriteString("Example format:\n")
	prompt.WriteString(fmt.Sprintf("%s Based on our internal data, sales have increased by 23%%.\n", constant.MarkerDatabase))
	prompt.WriteString(fmt.Sprintf("%s According to recent industry reports, fabric innovations are gaining traction in the market.\n\n", constant.MarkerOnline))

	prompt.WriteString("Provide a combined, cohesive answer that integrates both sources with clear attribution.")

	return prompt.String()
}
