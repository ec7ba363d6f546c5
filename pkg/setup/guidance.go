package setup

import "fmt"

const (
	ExamplesURL        = "https://github.com/seshanpillay25/contexthub/tree/main/examples"
	TroubleshootingURL = "https://github.com/seshanpillay25/contexthub/blob/main/docs/troubleshooting.md"
	IssuesURL          = "https://github.com/seshanpillay25/contexthub/issues"
)

const nextStepsMarkdown = `## Next steps

1. Edit ` + "`%s`" + ` to add your project context
2. All AI tools will automatically use the unified configuration
3. Check our examples at: %s

Happy coding with your AI assistants! 🤖
`

const troubleshootingMarkdown = `## If you need help

- Check our troubleshooting guide: %s
- Open an issue: %s
`

// NextSteps is shown after a fully successful run.
func NextSteps(master string) string {
	return fmt.Sprintf(nextStepsMarkdown, master, ExamplesURL)
}

// Troubleshooting is shown when any target failed or verification did not
// pass.
func Troubleshooting() string {
	return fmt.Sprintf(troubleshootingMarkdown, TroubleshootingURL, IssuesURL)
}
