package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile_PlainText(t *testing.T) {
	content := "Tenant shall provide written notice no later than ninety days prior to the renewal date."
	path := writeTemp(t, "lease.txt", content)

	res, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != content {
		t.Errorf("Plain text must pass through verbatim, got %q", res.Text)
	}
	if res.Source != "lease.txt" {
		t.Errorf("Expected base name as source, got %q", res.Source)
	}
	if res.Warning != "" {
		t.Errorf("Unexpected warning: %q", res.Warning)
	}
}

func TestReadFile_HTMLVisibleText(t *testing.T) {
	page := `<html><head><style>body { color: red; }</style>
<script>console.log("hidden");</script></head>
<body><h1>Master Services Agreement</h1>
<p>Payment is due within 30 days of the invoice date.</p>
<noscript>enable scripts</noscript></body></html>`
	path := writeTemp(t, "msa.html", page)

	res, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Text, "Master Services Agreement") {
		t.Errorf("Visible heading missing from %q", res.Text)
	}
	if !strings.Contains(res.Text, "Payment is due within 30 days") {
		t.Errorf("Visible paragraph missing from %q", res.Text)
	}
	for _, hidden := range []string{"color: red", "console.log", "enable scripts"} {
		if strings.Contains(res.Text, hidden) {
			t.Errorf("Hidden content %q leaked into %q", hidden, res.Text)
		}
	}
}

func TestReadFile_NearEmptyWarning(t *testing.T) {
	path := writeTemp(t, "scan.txt", "  \n\n p. 1 \n")

	res, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if res.Warning == "" {
		t.Error("Expected a near-empty warning")
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
