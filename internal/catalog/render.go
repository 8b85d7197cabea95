package catalog

import (
	"fmt"
	"strings"

	"estimate-srv/pkg/util"
)

// RenderOptions parameterizes the catalog-to-text renderer. The same renderer
// backs both the full and the budget-constrained estimate prompts.
type RenderOptions struct {
	// BudgetCeiling, when positive, is printed so the generation model sees
	// the requested limit next to the stage prices.
	BudgetCeiling int64
	// TrimOptional drops zero-cost stages (handover/education extras).
	TrimOptional bool
}

// Render produces the staged estimate text for the given category ids.
// Unknown ids are skipped. Output ordering follows catalog order.
func Render(ids []string, opts RenderOptions) string {
	var b strings.Builder

	var total int64
	for _, id := range ids {
		c, ok := Get(id)
		if !ok {
			continue
		}

		b.WriteString(fmt.Sprintf("[%s 서비스 상세 견적]\n", displayName(c.ID)))
		for _, s := range c.Stages {
			if opts.TrimOptional && s.Cost == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("\n▶ %s\n", displayName(s.Name)))
			b.WriteString(fmt.Sprintf("- 비용: %s원\n", util.FormatComma(s.Cost)))
			b.WriteString("- 주요 기능:\n")
			for _, f := range s.Features {
				b.WriteString(fmt.Sprintf("  · %s\n", f))
			}
			if len(s.Outputs) > 0 {
				b.WriteString("- 산출물:\n")
				for _, o := range s.Outputs {
					b.WriteString(fmt.Sprintf("  · %s\n", o))
				}
			}
			total += s.Cost
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("총 견적: %s원\n", util.FormatComma(total)))
	if opts.BudgetCeiling > 0 {
		b.WriteString(fmt.Sprintf("요청 예산: %s원\n", util.FormatComma(opts.BudgetCeiling)))
	}
	return b.String()
}

func displayName(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
