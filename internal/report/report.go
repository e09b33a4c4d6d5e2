// Package report projects provisioning results into the operator-facing
// summary: the public address, a ready-to-paste SSH command, and the
// application URL.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/util/naming"
)

// Outputs holds the values reported after a successful apply. All three
// values derive from the same Elastic IP and configured domain.
type Outputs struct {
	PublicIP   string
	SSHCommand string
	AccessURL  string
	// AccessFile is the path the generated admin credential was written to,
	// empty when this run did not launch the instance.
	AccessFile string
}

// FromState projects the provisioning state into the reported outputs.
func FromState(cfg *config.Config, state *provisioning.State) Outputs {
	out := Outputs{
		PublicIP:   state.PublicIP,
		SSHCommand: fmt.Sprintf("ssh -i %s.pem %s@%s", cfg.KeyName, config.SSHUser, state.PublicIP),
		AccessURL:  fmt.Sprintf("https://%s", cfg.Domain),
	}
	if state.InstanceCreated {
		out.AccessFile = naming.AccessFile(cfg.Name)
	}
	return out
}

var (
	colorWhite = lipgloss.Color("#f9fafb")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorGreen = lipgloss.Color("#22c55e")
	colorDim   = lipgloss.Color("#6b7280")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	nameStyle  = lipgloss.NewStyle().Foreground(colorBlue)
	valueStyle = lipgloss.NewStyle().Foreground(colorGreen)
	dimStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// Render writes the summary to w, styled when stdout is a terminal.
func Render(w io.Writer, deployment string, out Outputs) {
	if isTerminal() {
		renderStyled(w, deployment, out)
		return
	}
	renderPlain(w, out)
}

func renderStyled(w io.Writer, deployment string, out Outputs) {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  n8nup: %s", deployment)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("=", 30)))
	b.WriteString("\n\n")

	row := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %s  %s\n", nameStyle.Render(fmt.Sprintf("%-12s", name)), valueStyle.Render(value)))
	}
	row("Address", out.PublicIP)
	row("SSH", out.SSHCommand)
	row("URL", out.AccessURL)
	if out.AccessFile != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Admin credentials written to %s", out.AccessFile)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprint(w, b.String())
}

func renderPlain(w io.Writer, out Outputs) {
	fmt.Fprintf(w, "address: %s\n", out.PublicIP)
	fmt.Fprintf(w, "ssh: %s\n", out.SSHCommand)
	fmt.Fprintf(w, "url: %s\n", out.AccessURL)
	if out.AccessFile != "" {
		fmt.Fprintf(w, "credentials: %s\n", out.AccessFile)
	}
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
