package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/urlrisk/internal/model"
	"github.com/nao1215/urlrisk/internal/urlinfo"
)

// ruleWidth is the width of the horizontal rules in text reports.
const ruleWidth = 70

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Design decision: We print the color hint as a word next to the label
// rather than emitting ANSI escapes, so output stays readable when piped
// to files or other tools.
type SimpleWriter struct {
	baseWriter

	// verbose adds the raw feature values and URL details.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs a single assessment.
func (w *SimpleWriter) Write(a *model.Assessment) (int, error) {
	var sb strings.Builder
	w.writeHeader(&sb)
	w.writeAssessment(&sb, a)
	w.writeFooter(&sb)
	return io.WriteString(w.output, sb.String())
}

// WriteBatch outputs every assessment followed by a tier summary.
func (w *SimpleWriter) WriteBatch(assessments []model.Assessment) (int, error) {
	var sb strings.Builder
	w.writeHeader(&sb)
	for i := range assessments {
		if i > 0 {
			sb.WriteString(strings.Repeat("=", ruleWidth))
			sb.WriteString("\n\n")
		}
		w.writeAssessment(&sb, &assessments[i])
	}
	w.writeSummary(&sb, assessments)
	w.writeFooter(&sb)
	return io.WriteString(w.output, sb.String())
}

// WriteAck outputs the acknowledgment of a reported URL.
func (w *SimpleWriter) WriteAck(ack model.ReportAck) (int, error) {
	return io.WriteString(w.output, ack.Message+"\n")
}

// writeHeader writes the report banner.
func (w *SimpleWriter) writeHeader(sb *strings.Builder) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("                          URL RISK REPORT\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")
}

// writeAssessment writes the tier, confidence, advice and explanations.
func (w *SimpleWriter) writeAssessment(sb *strings.Builder, a *model.Assessment) {
	fmt.Fprintf(sb, "Risk Level:   [%s] %s (%s)\n", indicator(a.Tier), a.Tier.Label(), a.Tier.Color())
	fmt.Fprintf(sb, "Confidence:   %s\n", FormatConfidence(a.Probability))
	fmt.Fprintf(sb, "Scanned URL:  %s\n", a.URL)
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  >> %s\n", a.Advice)
	sb.WriteString("\n")

	w.section(sb, "EXPLAINABILITY")
	if !a.HasExplanations() {
		sb.WriteString("  No red flags found\n")
	}
	for _, e := range a.Explanations {
		fmt.Fprintf(sb, "  - %s\n", e)
	}
	sb.WriteString("\n")

	if !w.verbose {
		return
	}

	w.section(sb, "DETAILS")
	fmt.Fprintf(sb, "  Length:            %d\n", a.Features.Length)
	fmt.Fprintf(sb, "  Dots:              %d\n", a.Features.NumDots)
	fmt.Fprintf(sb, "  Contains '@':      %t\n", a.Features.HasAt == 1)

	info := urlinfo.Describe(a.URL)
	if info.Host != "" {
		fmt.Fprintf(sb, "  Host:              %s\n", info.Host)
	}
	if info.UnicodeHost != "" {
		fmt.Fprintf(sb, "  Unicode Host:      %s\n", info.UnicodeHost)
	}
	if info.RegisteredDomain != "" {
		fmt.Fprintf(sb, "  Registered Domain: %s\n", info.RegisteredDomain)
	}
	if info.UserInfo != "" {
		fmt.Fprintf(sb, "  Text before '@':   %s\n", info.UserInfo)
	}
	sb.WriteString("\n")
}

// writeSummary writes the tier counts of a batch.
func (w *SimpleWriter) writeSummary(sb *strings.Builder, assessments []model.Assessment) {
	w.section(sb, "TIER SUMMARY")
	counts := model.TierCounts(assessments)
	for _, tier := range model.Tiers {
		fmt.Fprintf(sb, "  %-11s %d\n", tier.String()+":", counts[tier])
	}
	sb.WriteString("\n")
	fmt.Fprintf(sb, "  TOTAL:      %d URLs\n", len(assessments))
	sb.WriteString("\n")
}

// section writes a titled separator.
func (w *SimpleWriter) section(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Scores are derived from the URL text only; no request was made.\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}

// indicator returns a visual marker for the tier.
func indicator(tier model.RiskTier) string {
	switch tier {
	case model.TierHighRisk:
		return "!!!"
	case model.TierSuspicious:
		return "!"
	case model.TierSafe:
		return "ok"
	default:
		return "?"
	}
}
