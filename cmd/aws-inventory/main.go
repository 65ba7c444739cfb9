package main

import (
	"fmt"
	"os"

	"github.com/cloudsizing/aws-inventory-go/internal/adapter/driven/aws"
	"github.com/cloudsizing/aws-inventory-go/internal/adapter/driven/config"
	"github.com/cloudsizing/aws-inventory-go/internal/adapter/driven/report"
	"github.com/cloudsizing/aws-inventory-go/internal/adapter/driving/cli"
	"github.com/cloudsizing/aws-inventory-go/internal/application/usecase"
	"github.com/cloudsizing/aws-inventory-go/pkg/console"
	"github.com/cloudsizing/aws-inventory-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	awsRepo := aws.NewAWSRepository()
	reportRepo := report.NewReportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	inventoryUseCase := usecase.NewInventoryUseCase(
		awsRepo,
		reportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetInventoryUseCase(inventoryUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
