package usecase

import (
	"context"
	"fmt"

	"github.com/cloudsizing/aws-inventory-go/internal/domain/entity"
	"github.com/cloudsizing/aws-inventory-go/internal/domain/repository"
	"github.com/cloudsizing/aws-inventory-go/internal/shared/types"
)

// InventoryUseCase handles the inventory collection run.
type InventoryUseCase struct {
	awsRepo    repository.InventoryRepository
	reportRepo repository.ReportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewInventoryUseCase creates a new inventory use case.
func NewInventoryUseCase(
	awsRepo repository.InventoryRepository,
	reportRepo repository.ReportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *InventoryUseCase {
	return &InventoryUseCase{
		awsRepo:    awsRepo,
		reportRepo: reportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// InitializeProfiles determines which AWS profiles to use based on CLI args.
func (uc *InventoryUseCase) InitializeProfiles(args *types.CLIArgs) ([]string, error) {
	availableProfiles := uc.awsRepo.GetAWSProfiles()
	if len(availableProfiles) == 0 {
		return nil, types.ErrNoProfilesFound
	}

	profilesToUse := []string{}

	if len(args.Profiles) > 0 {
		for _, profile := range args.Profiles {
			found := false
			for _, availProfile := range availableProfiles {
				if profile == availProfile {
					profilesToUse = append(profilesToUse, profile)
					found = true
					break
				}
			}
			if !found {
				uc.console.LogWarning("Profile '%s' not found in AWS configuration", profile)
			}
		}
		if len(profilesToUse) == 0 {
			return nil, types.ErrNoValidProfilesFound
		}
	} else {
		// Sem perfis especificados, usa o perfil default se existir
		defaultExists := false
		for _, profile := range availableProfiles {
			if profile == "default" {
				profilesToUse = []string{"default"}
				defaultExists = true
				break
			}
		}

		if !defaultExists {
			profilesToUse = availableProfiles
			uc.console.LogWarning("No default profile found. Using all available profiles.")
		}
	}

	return profilesToUse, nil
}

// RunInventory executa a coleta de inventário e imprime o relatório final.
func (uc *InventoryUseCase) RunInventory(ctx context.Context, args *types.CLIArgs) error {
	// Mescla o arquivo de configuração, se especificado. Flags explícitas
	// têm precedência sobre valores do arquivo.
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}
		if len(args.Profiles) == 0 {
			args.Profiles = cfg.Profiles
		}
		args.JSON = args.JSON || cfg.JSON
		args.Verbose = args.Verbose || cfg.Verbose
	}

	profilesToUse, err := uc.InitializeProfiles(args)
	if err != nil {
		return err
	}

	// Checagem de credenciais, uma única vez, antes de qualquer coleta.
	for _, profile := range profilesToUse {
		if _, err := uc.awsRepo.GetSession(ctx, profile); err != nil {
			return fmt.Errorf("credential check failed for profile %s: %w", profile, err)
		}
	}

	// Spinner e barra de progresso só no modo texto não-verboso; no modo
	// JSON o stdout precisa permanecer legível por máquina.
	var status types.StatusHandle
	var progress types.ProgressHandle
	if !args.JSON && !args.Verbose {
		status = uc.console.Status("Collecting AWS inventory...")
		progress = uc.console.ProgressWithTotal(len(profilesToUse))
	}

	counters := entity.ResourceCounters{}

	for _, profile := range profilesToUse {
		if status != nil {
			status.Update(fmt.Sprintf("Collecting inventory for profile %s...", profile))
		}

		inventory, err := uc.collectProfile(ctx, profile, args.Verbose, &counters, status)
		if err != nil {
			if status != nil {
				status.Stop()
			}
			if progress != nil {
				progress.Stop()
			}
			return err
		}

		if args.Verbose {
			uc.console.LogSuccess("Profile %s (account %s): %d regions scanned",
				inventory.Profile, inventory.AccountID, len(inventory.Regions))
		}
		if progress != nil {
			progress.Increment()
		}
	}

	if progress != nil {
		progress.Stop()
	}
	if status != nil {
		status.Stop()
	}

	if args.JSON {
		out, err := uc.reportRepo.FormatJSON(counters)
		if err != nil {
			return err
		}
		uc.console.Println(out)
		return nil
	}

	uc.console.Print(uc.reportRepo.FormatText(counters))
	return nil
}

// collectProfile lista as regiões do perfil e acumula os contadores de cada
// uma, em ordem, no total global.
func (uc *InventoryUseCase) collectProfile(
	ctx context.Context,
	profile string,
	verbose bool,
	counters *entity.ResourceCounters,
	status types.StatusHandle,
) (entity.ProfileInventory, error) {
	inventory := entity.ProfileInventory{Profile: profile}

	// Conta é informativa; a falha aqui não interrompe a coleta.
	if accountID, err := uc.awsRepo.GetAccountID(ctx, profile); err == nil {
		inventory.AccountID = accountID
	} else {
		inventory.AccountID = "Unknown"
	}

	regions, err := uc.awsRepo.GetAccessibleRegions(ctx, profile)
	if err != nil {
		return inventory, err
	}
	inventory.Regions = regions

	for _, region := range regions {
		if status != nil {
			status.Update(fmt.Sprintf("Collecting inventory for profile %s (%s)...", profile, region))
		}

		regionCounts, err := uc.collectRegion(ctx, profile, region, verbose)
		if err != nil {
			return inventory, err
		}
		counters.Add(regionCounts)
	}

	return inventory, nil
}

// collectRegion issues the fixed sequence of read-only queries for one
// region. In verbose mode every count is reported as soon as it is known,
// before it becomes visible in the global total.
func (uc *InventoryUseCase) collectRegion(
	ctx context.Context,
	profile string,
	region string,
	verbose bool,
) (entity.RegionCounts, error) {
	rc := entity.RegionCounts{Profile: profile, Region: region}

	log := func(category string, count int) {
		if verbose {
			uc.console.LogInfo("[%s/%s] %s: %d", profile, region, category, count)
		}
	}

	var err error

	if rc.EC2Instances, err = uc.awsRepo.CountRunningEC2Instances(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("EC2 instances", rc.EC2Instances)

	if rc.RDSInstances, err = uc.awsRepo.CountRDSInstances(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("RDS instances", rc.RDSInstances)

	if rc.RedshiftClusters, err = uc.awsRepo.CountRedshiftClusters(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("Redshift clusters", rc.RedshiftClusters)

	if rc.ClassicLoadBalancers, err = uc.awsRepo.CountClassicLoadBalancers(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("v1 load balancers", rc.ClassicLoadBalancers)

	if rc.LoadBalancersV2, err = uc.awsRepo.CountLoadBalancersV2(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("v2 load balancers", rc.LoadBalancersV2)

	if rc.NATGateways, err = uc.awsRepo.CountNATGateways(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("NAT gateways", rc.NATGateways)

	// A lista de clusters alimenta as duas contagens por cluster e é
	// descartada quando a região termina.
	clusterArns, err := uc.awsRepo.ListECSClusters(ctx, profile, region)
	if err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	rc.ECSFargateClusters = len(clusterArns)
	log("ECS Fargate clusters", rc.ECSFargateClusters)

	for _, clusterArn := range clusterArns {
		tasks, err := uc.awsRepo.CountFargateRunningTasks(ctx, profile, region, clusterArn)
		if err != nil {
			return rc, fmt.Errorf("profile %s: %w", profile, err)
		}
		rc.FargateRunningTasks += tasks
	}
	log("ECS Fargate running tasks", rc.FargateRunningTasks)

	for _, clusterArn := range clusterArns {
		services, err := uc.awsRepo.CountFargateActiveServices(ctx, profile, region, clusterArn)
		if err != nil {
			return rc, fmt.Errorf("profile %s: %w", profile, err)
		}
		rc.FargateActiveServices += services
	}
	log("ECS Fargate active services", rc.FargateActiveServices)

	if rc.TaskDefinitions, err = uc.awsRepo.CountTaskDefinitions(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("ECS task definitions", rc.TaskDefinitions)

	if rc.LambdaFunctions, err = uc.awsRepo.CountLambdaFunctions(ctx, profile, region); err != nil {
		return rc, fmt.Errorf("profile %s: %w", profile, err)
	}
	log("Lambda functions", rc.LambdaFunctions)

	return rc, nil
}
