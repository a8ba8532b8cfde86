package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/urlrisk/internal/model"
	"github.com/nao1215/urlrisk/internal/urlinfo"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// Tier severity maps onto GitHub alerts: HIGH_RISK is a caution,
// SUSPICIOUS a warning and SAFE a tip.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs a single assessment.
func (w *MarkdownWriter) Write(a *model.Assessment) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("URL Risk Report")
	md.PlainText("")
	w.writeAssessment(md, a)
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteBatch outputs a summary, a distribution chart and every assessment.
func (w *MarkdownWriter) WriteBatch(assessments []model.Assessment) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("URL Risk Report")
	md.PlainText("")

	w.writeSummary(md, assessments)

	for i := range assessments {
		md.H2(strconv.Itoa(i+1) + ". " + codeSpan(assessments[i].URL))
		md.PlainText("")
		w.writeAssessment(md, &assessments[i])
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteAck outputs the acknowledgment as a note.
func (w *MarkdownWriter) WriteAck(ack model.ReportAck) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.Note(ack.Message)
	return len(md.String()), md.Build()
}

// writeAssessment writes the property table, alert and explanations.
func (w *MarkdownWriter) writeAssessment(md *markdown.Markdown, a *model.Assessment) {
	rows := [][]string{
		{"Risk Level", tierBadge(a.Tier) + " " + a.Tier.Label()},
		{"Confidence", FormatConfidence(a.Probability)},
		{"Scanned URL", tableCell(codeSpan(a.URL))},
	}
	if info := urlinfo.Describe(a.URL); info.RegisteredDomain != "" {
		rows = append(rows, []string{"Registered Domain", tableCell(codeSpan(info.RegisteredDomain))})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	switch a.Tier {
	case model.TierHighRisk:
		md.Cautionf("%s", a.Advice)
	case model.TierSuspicious:
		md.Warningf("%s", a.Advice)
	default:
		md.Tip(a.Advice)
	}
	md.PlainText("")

	md.PlainText("**Explainability**")
	md.PlainText("")
	if a.HasExplanations() {
		md.BulletList(a.Explanations...)
	} else {
		md.PlainText("No red flags found.")
	}
	md.PlainText("")

	md.Details("Features", "length="+strconv.Itoa(a.Features.Length)+
		", num_dots="+strconv.Itoa(a.Features.NumDots)+
		", has_at="+strconv.Itoa(a.Features.HasAt))
	md.PlainText("")
}

// writeSummary writes tier counts and a pie chart of the distribution.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, assessments []model.Assessment) {
	counts := model.TierCounts(assessments)

	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(model.Tiers)+1)
	for _, tier := range model.Tiers {
		rows = append(rows, []string{tierBadge(tier) + " " + tier.Label(), strconv.Itoa(counts[tier])})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(len(assessments)) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"Tier", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(assessments) == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Risk Tier Distribution"),
		piechart.WithShowData(true),
	)
	for _, tier := range model.Tiers {
		if counts[tier] > 0 {
			chart.LabelAndIntValue(tier.Label(), uint64(counts[tier]))
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	if n := counts[model.TierHighRisk]; n > 0 {
		md.Cautionf("%d URL(s) look dangerous. Do not open them.", n)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Scores are derived from the URL text only; no request was made.*")
}

// codeSpan wraps s in an inline code span whose fence is longer than any
// backtick run inside s. Line breaks become spaces so the span stays on one line.
func codeSpan(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)

	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	if longest == 0 {
		return "`" + s + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}

// tableCell escapes pipes so the value stays inside its table cell.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// tierBadge returns a colored marker matching the tier's color hint.
func tierBadge(tier model.RiskTier) string {
	switch tier {
	case model.TierHighRisk:
		return "🔴"
	case model.TierSuspicious:
		return "🟠"
	case model.TierSafe:
		return "🟢"
	default:
		return "⚪"
	}
}
