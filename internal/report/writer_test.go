package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/urlrisk/internal/model"
)

// createHighRisk creates a high risk assessment for testing.
func createHighRisk() *model.Assessment {
	return &model.Assessment{
		URL:         "http://paypal.com.secure.login.verify.update.example.tk/@account",
		Features:    model.FeatureVector{Length: 65, NumDots: 6, HasAt: 1},
		Probability: 0.9134,
		Tier:        model.TierHighRisk,
		Advice:      model.TierHighRisk.Advice(),
		Explanations: []string{
			"Contains '@' symbol → often used to hide domain",
			"URL is long (65 chars)",
			"Too many dots (6) → confusing address",
		},
	}
}

// createSafe creates a safe assessment without explanations for testing.
func createSafe() *model.Assessment {
	return &model.Assessment{
		URL:          "http://example.com",
		Features:     model.FeatureVector{Length: 18, NumDots: 1, HasAt: 0},
		Probability:  0.1,
		Tier:         model.TierSafe,
		Advice:       model.TierSafe.Advice(),
		Explanations: []string{},
	}
}

// createSuspicious creates a suspicious assessment with the fallback explanation.
func createSuspicious() *model.Assessment {
	return &model.Assessment{
		URL:          "http://a.b.c.d.com",
		Features:     model.FeatureVector{Length: 18, NumDots: 4, HasAt: 0},
		Probability:  0.5,
		Tier:         model.TierSuspicious,
		Advice:       model.TierSuspicious.Advice(),
		Explanations: []string{"Suspicion is based on combined subtle features."},
	}
}

func TestFormatConfidence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p    float64
		want string
	}{
		{0, "0.00%"},
		{1, "100.00%"},
		{0.87654, "87.65%"},
		{0.285, "28.50%"},
		{0.5, "50.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := FormatConfidence(tt.p); got != tt.want {
				t.Errorf("FormatConfidence(%v) = %q, want %q", tt.p, got, tt.want)
			}
		})
	}
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes header, tier and confidence", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createHighRisk()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"URL RISK REPORT",
			"High Risk (Phishing)",
			"(red)",
			"91.34%",
			"Do NOT click! This site looks dangerous.",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("writes every explanation in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		a := createHighRisk()
		if _, err := NewSimpleWriter(&buf).Write(a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		last := -1
		for _, e := range a.Explanations {
			idx := strings.Index(output, e)
			if idx < 0 {
				t.Fatalf("expected output to contain %q", e)
			}
			if idx < last {
				t.Errorf("explanation %q is out of order", e)
			}
			last = idx
		}
	})

	t.Run("reports no red flags for safe url", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No red flags found") {
			t.Error("expected no red flags message")
		}
		if !strings.Contains(output, "(green)") {
			t.Error("expected green color hint")
		}
	})

	t.Run("verbose adds details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "DETAILS") {
			t.Error("expected details section")
		}
		if !strings.Contains(output, "Registered Domain: example.com") {
			t.Error("expected registered domain")
		}
	})

	t.Run("non verbose omits details", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "DETAILS") {
			t.Error("expected no details section")
		}
	})

	t.Run("batch writes tier summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		batch := []model.Assessment{*createHighRisk(), *createSafe(), *createSafe()}
		if _, err := NewSimpleWriter(&buf).WriteBatch(batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "TIER SUMMARY") {
			t.Error("expected tier summary")
		}
		if !strings.Contains(output, "TOTAL:      3 URLs") {
			t.Errorf("expected total count, got:\n%s", output)
		}
	})

	t.Run("writes acknowledgment", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ack := model.Acknowledge("http://bad.example")
		if _, err := NewSimpleWriter(&buf).WriteAck(ack); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != ack.Message+"\n" {
			t.Errorf("got %q", got)
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid json with tier name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createHighRisk()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got["tier"] != "HIGH_RISK" {
			t.Errorf("tier = %v, want HIGH_RISK", got["tier"])
		}
		if got["label"] != "High Risk (Phishing)" {
			t.Errorf("label = %v", got["label"])
		}
		if got["confidence"] != "91.34%" {
			t.Errorf("confidence = %v", got["confidence"])
		}
		if got["url"] != createHighRisk().URL {
			t.Errorf("url = %v", got["url"])
		}
	})

	t.Run("safe result has empty explanations array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"explanations":[]`) {
			t.Errorf("expected empty explanations array, got %s", buf.String())
		}
	})

	t.Run("pretty print indents output", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"url\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("batch includes summary for every tier", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		batch := []model.Assessment{*createHighRisk(), *createSafe()}
		if _, err := NewJSONWriter(&buf).WriteBatch(batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got BatchView
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(got.Results) != 2 {
			t.Fatalf("got %d results, want 2", len(got.Results))
		}
		want := map[string]int{"HIGH_RISK": 1, "SUSPICIOUS": 0, "SAFE": 1}
		for k, v := range want {
			if got.Summary[k] != v {
				t.Errorf("summary[%s] = %d, want %d", k, got.Summary[k], v)
			}
		}
	})

	t.Run("writes acknowledgment", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ack := model.Acknowledge("http://bad.example")
		if _, err := NewJSONWriter(&buf).WriteAck(ack); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got model.ReportAck
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if got != ack {
			t.Errorf("got %+v, want %+v", got, ack)
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and property table", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createHighRisk()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# URL Risk Report",
			"Risk Level",
			"High Risk (Phishing)",
			"91.34%",
			"[!CAUTION]",
			"URL is long (65 chars)",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("alert follows tier", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			a    *model.Assessment
			want string
		}{
			{"safe", createSafe(), "[!TIP]"},
			{"suspicious", createSuspicious(), "[!WARNING]"},
			{"high risk", createHighRisk(), "[!CAUTION]"},
		}
		for _, tt := range tests {
			var buf bytes.Buffer
			if _, err := NewMarkdownWriter(&buf).Write(tt.a); err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.name, err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("%s: expected %s alert", tt.name, tt.want)
			}
		}
	})

	t.Run("batch writes pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		batch := []model.Assessment{*createHighRisk(), *createSafe(), *createSuspicious()}
		if _, err := NewMarkdownWriter(&buf).WriteBatch(batch); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "pie") {
			t.Error("expected mermaid pie chart")
		}
		if !strings.Contains(output, "Risk Tier Distribution") {
			t.Error("expected chart title")
		}
		if !strings.Contains(output, "## Summary") {
			t.Error("expected summary section")
		}
	})

	t.Run("keeps pipes and backticks inside the url cell", func(t *testing.T) {
		t.Parallel()

		a := createSuspicious()
		a.URL = "http://a.com/x|y`z"

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBatch([]model.Assessment{*a}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var row string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "| Scanned URL |") {
				row = line
			}
		}
		if want := "| Scanned URL | `` http://a.com/x\\|y`z `` |"; row != want {
			t.Errorf("expected row %q, got %q", want, row)
		}
		if strings.Count(row, "|")-strings.Count(row, `\|`) != 3 {
			t.Errorf("expected exactly two cells in %q", row)
		}
		if !strings.Contains(buf.String(), "## 1. `` http://a.com/x|y`z ``") {
			t.Errorf("expected escaped heading, got:\n%s", buf.String())
		}
	})

	t.Run("writes acknowledgment as note", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		ack := model.Acknowledge("http://bad.example")
		if _, err := NewMarkdownWriter(&buf).WriteAck(ack); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!NOTE]") {
			t.Error("expected note alert")
		}
		if !strings.Contains(buf.String(), ack.Message) {
			t.Error("expected acknowledgment message")
		}
	})
}

func TestCodeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "http://example.com", want: "`http://example.com`"},
		{name: "single backtick", in: "a`b", want: "`` a`b ``"},
		{name: "backtick run", in: "a``b", want: "``` a``b ```"},
		{name: "leading backtick", in: "`a", want: "`` `a ``"},
		{name: "line breaks", in: "a\r\nb\nc", want: "`a b c`"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := codeSpan(tt.in); got != tt.want {
				t.Errorf("codeSpan(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

// TestMultiWriter tests writing to several writers.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()

		var text, js bytes.Buffer
		w := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))
		if _, err := w.Write(createSafe()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text.Len() == 0 || js.Len() == 0 {
			t.Error("expected both writers to receive output")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var js bytes.Buffer
		w := NewMultiWriter(NewSimpleWriter(failingWriter{}), NewJSONWriter(&js))
		if _, err := w.WriteAck(model.Acknowledge("x")); err == nil {
			t.Fatal("expected error")
		}
		if js.Len() != 0 {
			t.Error("expected second writer to be skipped")
		}
	})
}
