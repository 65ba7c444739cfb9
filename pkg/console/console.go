package console

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/cloudsizing/aws-inventory-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BoldRed       = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// ProgressWithTotal cria uma barra de progresso com o total especificado.
func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Collecting AWS inventory").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}
