package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}
