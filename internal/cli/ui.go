package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depgen/pkg/errors"
)

var (
	colorRed = lipgloss.Color("167") // Soft red - errors
	colorDim = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
)

const iconError = "✗"

// PrintError writes err as a single styled line, followed by its error code
// when it has one.
func PrintError(w io.Writer, err error) {
	line := styleIconError.Render(iconError) + " " + errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		line += " " + styleDim.Render("("+string(code)+")")
	}
	fmt.Fprintln(w, line)
}
