package colors

import "github.com/fatih/color"

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
)

// Status colours an http status code green when it's a success & red otherwise
func Status(status int) string {
	if status >= 400 {
		return Red(status)
	}
	if status >= 300 {
		return Cyan(status)
	}
	return Green(status)
}
