package repository

import (
	"context"
)

// InventoryRepository defines the read-only AWS queries the collector
// issues. One method per resource category keeps every call mockable.
type InventoryRepository interface {
	// Profile Operations
	GetAWSProfiles() []string
	GetSession(ctx context.Context, profile string) (string, error)
	GetAccountID(ctx context.Context, profile string) (string, error)

	// Region Operations
	GetAccessibleRegions(ctx context.Context, profile string) ([]string, error)

	// Per-region resource counts
	CountRunningEC2Instances(ctx context.Context, profile, region string) (int, error)
	CountRDSInstances(ctx context.Context, profile, region string) (int, error)
	CountRedshiftClusters(ctx context.Context, profile, region string) (int, error)
	CountClassicLoadBalancers(ctx context.Context, profile, region string) (int, error)
	CountLoadBalancersV2(ctx context.Context, profile, region string) (int, error)
	CountNATGateways(ctx context.Context, profile, region string) (int, error)
	CountTaskDefinitions(ctx context.Context, profile, region string) (int, error)
	CountLambdaFunctions(ctx context.Context, profile, region string) (int, error)

	// ECS cluster traversal. The cluster list of one region feeds the two
	// per-cluster counts and is discarded when the region completes.
	ListECSClusters(ctx context.Context, profile, region string) ([]string, error)
	CountFargateRunningTasks(ctx context.Context, profile, region, clusterArn string) (int, error)
	CountFargateActiveServices(ctx context.Context, profile, region, clusterArn string) (int, error)
}
