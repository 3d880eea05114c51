package pipeline

import (
	"fmt"
	"strings"

	"github.com/kgrange/tagwise/internal/cli"
)

const sampleTextWidth = 100

// RenderReport formats a run result for the terminal.
func RenderReport(result *Result) string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("Evaluation"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		cli.BoldStyle.Render("Exact-match accuracy:"),
		cli.MetricStyle.Render(fmt.Sprintf("%.4f", result.Report.Accuracy))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		cli.BoldStyle.Render("Weighted F1:         "),
		cli.MetricStyle.Render(fmt.Sprintf("%.4f", result.Report.WeightedF1))))
	b.WriteString(fmt.Sprintf("%s %s\n",
		cli.BoldStyle.Render("Average precision:   "),
		cli.MetricStyle.Render(fmt.Sprintf("%.4f", result.Report.AveragePrecision))))

	if len(result.Report.Undefined) > 0 {
		b.WriteString(cli.WarningStyle.Render(fmt.Sprintf(
			"undefined (no positive examples): %s", strings.Join(result.Report.Undefined, ", "))))
		b.WriteString("\n")
	}

	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf(
		"%d rows, %d features, %d labels, train/val/test %d/%d/%d, seed %d",
		result.Rows, result.Features, result.Labels,
		result.TrainRows, result.ValidationRows, result.TestRows, result.Seed)))
	b.WriteString("\n")

	if len(result.Samples) > 0 {
		b.WriteString("\n")
		b.WriteString(cli.TitleStyle.Render("Sample predictions"))
		b.WriteString("\n")
		for _, sample := range result.Samples {
			b.WriteString(cli.BoxStyle.Render(renderSample(sample)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderSample(sample Sample) string {
	text := sample.Text
	if len(text) > sampleTextWidth {
		text = text[:sampleTextWidth] + "…"
	}
	return fmt.Sprintf("%s\n%s %s\n%s %s",
		cli.SubtleStyle.Render(text),
		cli.BoldStyle.Render("true:"), renderLabels(sample.Want),
		cli.BoldStyle.Render("pred:"), renderLabels(sample.Predicted))
}

func renderLabels(labels []string) string {
	if len(labels) == 0 {
		return cli.SubtleStyle.Render("(none)")
	}
	return strings.Join(labels, ", ")
}
