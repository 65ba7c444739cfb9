package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
)

// Batch limits imposed by the ECS API:
// https://docs.aws.amazon.com/AmazonECS/latest/APIReference/API_DescribeTasks.html
// https://docs.aws.amazon.com/AmazonECS/latest/APIReference/API_DescribeServices.html
const (
	describeTasksBatchSize    = 100
	describeServicesBatchSize = 10
)

// ECSTaskAPIClient covers the ECS calls used to count running Fargate tasks.
type ECSTaskAPIClient interface {
	ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error)
	DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error)
}

// ECSServiceAPIClient covers the ECS calls used to count active Fargate services.
type ECSServiceAPIClient interface {
	ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error)
	DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error)
}

// countFargateRunningTasks lists every task of the cluster and counts the
// ones launched on Fargate whose last known status is RUNNING. When the
// cluster has no tasks the describe call is skipped entirely.
func countFargateRunningTasks(ctx context.Context, client ECSTaskAPIClient, clusterArn string) (int, error) {
	var taskArns []string
	paginator := ecs.NewListTasksPaginator(client, &ecs.ListTasksInput{
		Cluster: aws.String(clusterArn),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error listing tasks for cluster %s: %w", clusterArn, err)
		}
		taskArns = append(taskArns, output.TaskArns...)
	}

	if len(taskArns) == 0 {
		return 0, nil
	}

	count := 0
	for i := 0; i < len(taskArns); i += describeTasksBatchSize {
		j := i + describeTasksBatchSize
		if j > len(taskArns) {
			j = len(taskArns)
		}

		output, err := client.DescribeTasks(ctx, &ecs.DescribeTasksInput{
			Cluster: aws.String(clusterArn),
			Tasks:   taskArns[i:j],
		})
		if err != nil {
			return 0, fmt.Errorf("error describing tasks for cluster %s: %w", clusterArn, err)
		}
		for _, task := range output.Tasks {
			if task.LaunchType == ecsTypes.LaunchTypeFargate && aws.ToString(task.LastStatus) == "RUNNING" {
				count++
			}
		}
	}
	return count, nil
}

// countFargateActiveServices lists every service of the cluster and counts
// the ones launched on Fargate whose status is ACTIVE. When the cluster has
// no services the describe call is skipped entirely.
func countFargateActiveServices(ctx context.Context, client ECSServiceAPIClient, clusterArn string) (int, error) {
	var serviceArns []string
	paginator := ecs.NewListServicesPaginator(client, &ecs.ListServicesInput{
		Cluster: aws.String(clusterArn),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error listing services for cluster %s: %w", clusterArn, err)
		}
		serviceArns = append(serviceArns, output.ServiceArns...)
	}

	if len(serviceArns) == 0 {
		return 0, nil
	}

	count := 0
	for i := 0; i < len(serviceArns); i += describeServicesBatchSize {
		j := i + describeServicesBatchSize
		if j > len(serviceArns) {
			j = len(serviceArns)
		}

		output, err := client.DescribeServices(ctx, &ecs.DescribeServicesInput{
			Cluster:  aws.String(clusterArn),
			Services: serviceArns[i:j],
		})
		if err != nil {
			return 0, fmt.Errorf("error describing services for cluster %s: %w", clusterArn, err)
		}
		for _, service := range output.Services {
			if service.LaunchType == ecsTypes.LaunchTypeFargate && aws.ToString(service.Status) == "ACTIVE" {
				count++
			}
		}
	}
	return count, nil
}
