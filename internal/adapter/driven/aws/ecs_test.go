package aws

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	ecsTypes "github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockECSTaskClient paginates ListTasks com pageSize e devolve, em
// DescribeTasks, as tasks pedidas.
type mockECSTaskClient struct {
	tasks           []ecsTypes.Task
	pageSize        int
	describeBatches []int
}

func (m *mockECSTaskClient) ListTasks(ctx context.Context, params *ecs.ListTasksInput, optFns ...func(*ecs.Options)) (*ecs.ListTasksOutput, error) {
	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}
	end := start + m.pageSize
	if end > len(m.tasks) {
		end = len(m.tasks)
	}

	output := &ecs.ListTasksOutput{}
	for _, task := range m.tasks[start:end] {
		output.TaskArns = append(output.TaskArns, *task.TaskArn)
	}
	if end < len(m.tasks) {
		output.NextToken = aws.String(strconv.Itoa(end))
	}
	return output, nil
}

func (m *mockECSTaskClient) DescribeTasks(ctx context.Context, params *ecs.DescribeTasksInput, optFns ...func(*ecs.Options)) (*ecs.DescribeTasksOutput, error) {
	m.describeBatches = append(m.describeBatches, len(params.Tasks))

	requested := make(map[string]bool, len(params.Tasks))
	for _, arn := range params.Tasks {
		requested[arn] = true
	}

	output := &ecs.DescribeTasksOutput{}
	for _, task := range m.tasks {
		if requested[*task.TaskArn] {
			output.Tasks = append(output.Tasks, task)
		}
	}
	return output, nil
}

type mockECSServiceClient struct {
	services        []ecsTypes.Service
	pageSize        int
	describeBatches []int
}

func (m *mockECSServiceClient) ListServices(ctx context.Context, params *ecs.ListServicesInput, optFns ...func(*ecs.Options)) (*ecs.ListServicesOutput, error) {
	start := 0
	if params.NextToken != nil {
		start, _ = strconv.Atoi(*params.NextToken)
	}
	end := start + m.pageSize
	if end > len(m.services) {
		end = len(m.services)
	}

	output := &ecs.ListServicesOutput{}
	for _, service := range m.services[start:end] {
		output.ServiceArns = append(output.ServiceArns, *service.ServiceArn)
	}
	if end < len(m.services) {
		output.NextToken = aws.String(strconv.Itoa(end))
	}
	return output, nil
}

func (m *mockECSServiceClient) DescribeServices(ctx context.Context, params *ecs.DescribeServicesInput, optFns ...func(*ecs.Options)) (*ecs.DescribeServicesOutput, error) {
	m.describeBatches = append(m.describeBatches, len(params.Services))

	requested := make(map[string]bool, len(params.Services))
	for _, arn := range params.Services {
		requested[arn] = true
	}

	output := &ecs.DescribeServicesOutput{}
	for _, service := range m.services {
		if requested[*service.ServiceArn] {
			output.Services = append(output.Services, service)
		}
	}
	return output, nil
}

func newTask(arn string, launchType ecsTypes.LaunchType, lastStatus string) ecsTypes.Task {
	return ecsTypes.Task{
		TaskArn:    aws.String(arn),
		LaunchType: launchType,
		LastStatus: aws.String(lastStatus),
	}
}

func newService(arn string, launchType ecsTypes.LaunchType, status string) ecsTypes.Service {
	return ecsTypes.Service{
		ServiceArn: aws.String(arn),
		LaunchType: launchType,
		Status:     aws.String(status),
	}
}

func TestCountFargateRunningTasks(t *testing.T) {
	client := &mockECSTaskClient{
		pageSize: 10,
		tasks: []ecsTypes.Task{
			newTask("arn:task/1", ecsTypes.LaunchTypeFargate, "RUNNING"),
			newTask("arn:task/2", ecsTypes.LaunchTypeFargate, "RUNNING"),
			newTask("arn:task/3", ecsTypes.LaunchTypeFargate, "STOPPED"),
			newTask("arn:task/4", ecsTypes.LaunchTypeEc2, "RUNNING"),
			newTask("arn:task/5", ecsTypes.LaunchTypeFargate, "PENDING"),
		},
	}

	count, err := countFargateRunningTasks(context.Background(), client, "arn:cluster/main")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountFargateRunningTasksEmptyCluster(t *testing.T) {
	client := &mockECSTaskClient{pageSize: 10}

	count, err := countFargateRunningTasks(context.Background(), client, "arn:cluster/empty")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	// Cluster sem tasks não gera chamada de describe
	assert.Empty(t, client.describeBatches)
}

func TestCountFargateRunningTasksBatching(t *testing.T) {
	client := &mockECSTaskClient{pageSize: 100}
	for i := 0; i < 250; i++ {
		client.tasks = append(client.tasks,
			newTask(fmt.Sprintf("arn:task/%d", i), ecsTypes.LaunchTypeFargate, "RUNNING"))
	}

	count, err := countFargateRunningTasks(context.Background(), client, "arn:cluster/big")
	require.NoError(t, err)
	assert.Equal(t, 250, count)
	assert.Equal(t, []int{100, 100, 50}, client.describeBatches)
}

func TestCountFargateActiveServices(t *testing.T) {
	client := &mockECSServiceClient{
		pageSize: 10,
		services: []ecsTypes.Service{
			newService("arn:service/1", ecsTypes.LaunchTypeFargate, "ACTIVE"),
			newService("arn:service/2", ecsTypes.LaunchTypeFargate, "DRAINING"),
			newService("arn:service/3", ecsTypes.LaunchTypeEc2, "ACTIVE"),
			newService("arn:service/4", ecsTypes.LaunchTypeFargate, "ACTIVE"),
		},
	}

	count, err := countFargateActiveServices(context.Background(), client, "arn:cluster/main")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountFargateActiveServicesEmptyCluster(t *testing.T) {
	client := &mockECSServiceClient{pageSize: 10}

	count, err := countFargateActiveServices(context.Background(), client, "arn:cluster/empty")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, client.describeBatches)
}

func TestCountFargateActiveServicesBatching(t *testing.T) {
	client := &mockECSServiceClient{pageSize: 100}
	for i := 0; i < 25; i++ {
		client.services = append(client.services,
			newService(fmt.Sprintf("arn:service/%d", i), ecsTypes.LaunchTypeFargate, "ACTIVE"))
	}

	count, err := countFargateActiveServices(context.Background(), client, "arn:cluster/big")
	require.NoError(t, err)
	assert.Equal(t, 25, count)
	// DescribeServices aceita no máximo 10 serviços por chamada
	assert.Equal(t, []int{10, 10, 5}, client.describeBatches)
}
