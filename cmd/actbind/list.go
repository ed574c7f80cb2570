package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/actbind/activation"
	"github.com/born-ml/actbind/backend/cpu"
	"github.com/born-ml/actbind/backend/webgpu"
	"github.com/charmbracelet/lipgloss"
)

func list() {
	fmt.Println(titleStyle.Render("Backends"))
	backends := newPlainTable(lipgloss.Right, lipgloss.Left)
	backends.Headers("model", "available")
	backends.Row(cpu.Model, "yes")
	gpu := "no"
	if webgpu.IsAvailable() {
		gpu = "yes"
	}
	backends.Row(webgpu.Model, gpu)
	fmt.Println(backends.Render())

	fmt.Println(titleStyle.Render("Activations"))
	kinds := newPlainTable(lipgloss.Right, lipgloss.Left)
	kinds.Headers("kind", "keys", "defaults")
	for _, kind := range activation.Kinds() {
		defaults := "n/a"
		if a, err := activation.New(kind, activation.Config{}); err == nil {
			defaults = a.String()
		}
		kinds.Row(kind.String(), strings.Join(activation.SupportedKeys(kind), "\n"), defaults)
	}
	fmt.Println(kinds.Render())
}
