package aws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/redshift"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/cloudsizing/aws-inventory-go/internal/domain/repository"
)

// AWSRepositoryImpl implementa o InventoryRepository com cache de clientes.
type AWSRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do InventoryRepository.
func NewAWSRepository() repository.InventoryRepository {
	return &AWSRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

// GetSession resolves the shared config for a profile once, before any
// region is visited. A failure here aborts the whole run.
func (r *AWSRepositoryImpl) GetSession(ctx context.Context, profile string) (string, error) {
	_, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return "", err
	}
	return profile, nil
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithSharedConfigProfile(profile))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s-%s", profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "ec2":
		client = ec2.NewFromConfig(regionalCfg)
	case "rds":
		client = rds.NewFromConfig(regionalCfg)
	case "redshift":
		client = redshift.NewFromConfig(regionalCfg)
	case "elb":
		client = elasticloadbalancing.NewFromConfig(regionalCfg)
	case "elbv2":
		client = elasticloadbalancingv2.NewFromConfig(regionalCfg)
	case "ecs":
		client = ecs.NewFromConfig(regionalCfg)
	case "lambda":
		client = lambda.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

func (r *AWSRepositoryImpl) GetAWSProfiles() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return []string{"default"}
	}

	credentialsPath := filepath.Join(homeDir, ".aws", "credentials")
	configPath := filepath.Join(homeDir, ".aws", "config")

	profiles := make(map[string]bool)
	profileRegex := regexp.MustCompile(`\[([^]]+)\]`)

	parseFile := func(path string, isConfig bool) {
		content, err := os.ReadFile(path)
		if err != nil {
			return
		}
		matches := profileRegex.FindAllStringSubmatch(string(content), -1)
		for _, match := range matches {
			profileName := match[1]
			if isConfig {
				profileName = strings.TrimPrefix(profileName, "profile ")
			}
			profiles[profileName] = true
		}
	}

	parseFile(credentialsPath, false)
	parseFile(configPath, true)

	if len(profiles) == 0 {
		profiles["default"] = true
	}

	result := make([]string, 0, len(profiles))
	for profile := range profiles {
		result = append(result, profile)
	}
	sort.Strings(result)
	return result
}

func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "us-east-1", "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return *result.Account, nil
}

// GetAccessibleRegions lista as regiões visíveis ao perfil. A lista é
// consultada de novo a cada perfil; nunca é cacheada entre perfis.
func (r *AWSRepositoryImpl) GetAccessibleRegions(ctx context.Context, profile string) ([]string, error) {
	client, err := r.getServiceClient(ctx, profile, "us-east-1", "ec2")
	if err != nil {
		return nil, err
	}
	ec2Client := client.(*ec2.Client)

	regionsOutput, err := ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(false)})
	if err != nil {
		return nil, fmt.Errorf("failed to list regions for profile %s: %w", profile, err)
	}

	accessibleRegions := make([]string, 0, len(regionsOutput.Regions))
	for _, region := range regionsOutput.Regions {
		accessibleRegions = append(accessibleRegions, *region.RegionName)
	}
	return accessibleRegions, nil
}

func (r *AWSRepositoryImpl) CountRunningEC2Instances(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ec2")
	if err != nil {
		return 0, err
	}
	ec2Client := client.(*ec2.Client)

	count := 0
	paginator := ec2.NewDescribeInstancesPaginator(ec2Client, &ec2.DescribeInstancesInput{
		Filters: []ec2Types.Filter{
			{Name: aws.String("instance-state-name"), Values: []string{"running"}},
		},
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting EC2 instances in %s: %w", region, err)
		}
		for _, reservation := range output.Reservations {
			count += len(reservation.Instances)
		}
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountRDSInstances(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "rds")
	if err != nil {
		return 0, err
	}
	rdsClient := client.(*rds.Client)

	count := 0
	paginator := rds.NewDescribeDBInstancesPaginator(rdsClient, &rds.DescribeDBInstancesInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting RDS instances in %s: %w", region, err)
		}
		count += len(output.DBInstances)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountRedshiftClusters(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "redshift")
	if err != nil {
		return 0, err
	}
	redshiftClient := client.(*redshift.Client)

	count := 0
	paginator := redshift.NewDescribeClustersPaginator(redshiftClient, &redshift.DescribeClustersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting Redshift clusters in %s: %w", region, err)
		}
		count += len(output.Clusters)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountClassicLoadBalancers(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "elb")
	if err != nil {
		return 0, err
	}
	elbClient := client.(*elasticloadbalancing.Client)

	count := 0
	paginator := elasticloadbalancing.NewDescribeLoadBalancersPaginator(elbClient, &elasticloadbalancing.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting classic load balancers in %s: %w", region, err)
		}
		count += len(output.LoadBalancerDescriptions)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountLoadBalancersV2(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "elbv2")
	if err != nil {
		return 0, err
	}
	elbv2Client := client.(*elasticloadbalancingv2.Client)

	count := 0
	paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(elbv2Client, &elasticloadbalancingv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting v2 load balancers in %s: %w", region, err)
		}
		count += len(output.LoadBalancers)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountNATGateways(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ec2")
	if err != nil {
		return 0, err
	}
	ec2Client := client.(*ec2.Client)

	count := 0
	paginator := ec2.NewDescribeNatGatewaysPaginator(ec2Client, &ec2.DescribeNatGatewaysInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting NAT gateways in %s: %w", region, err)
		}
		count += len(output.NatGateways)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) ListECSClusters(ctx context.Context, profile, region string) ([]string, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecs")
	if err != nil {
		return nil, err
	}
	ecsClient := client.(*ecs.Client)

	var clusterArns []string
	paginator := ecs.NewListClustersPaginator(ecsClient, &ecs.ListClustersInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error listing ECS clusters in %s: %w", region, err)
		}
		clusterArns = append(clusterArns, output.ClusterArns...)
	}
	return clusterArns, nil
}

func (r *AWSRepositoryImpl) CountFargateRunningTasks(ctx context.Context, profile, region, clusterArn string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecs")
	if err != nil {
		return 0, err
	}
	return countFargateRunningTasks(ctx, client.(*ecs.Client), clusterArn)
}

func (r *AWSRepositoryImpl) CountFargateActiveServices(ctx context.Context, profile, region, clusterArn string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecs")
	if err != nil {
		return 0, err
	}
	return countFargateActiveServices(ctx, client.(*ecs.Client), clusterArn)
}

// CountTaskDefinitions conta todas as task definitions da região,
// independente de cluster ou launch type.
func (r *AWSRepositoryImpl) CountTaskDefinitions(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "ecs")
	if err != nil {
		return 0, err
	}
	ecsClient := client.(*ecs.Client)

	count := 0
	paginator := ecs.NewListTaskDefinitionsPaginator(ecsClient, &ecs.ListTaskDefinitionsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting task definitions in %s: %w", region, err)
		}
		count += len(output.TaskDefinitionArns)
	}
	return count, nil
}

func (r *AWSRepositoryImpl) CountLambdaFunctions(ctx context.Context, profile, region string) (int, error) {
	client, err := r.getServiceClient(ctx, profile, region, "lambda")
	if err != nil {
		return 0, err
	}
	lambdaClient := client.(*lambda.Client)

	count := 0
	paginator := lambda.NewListFunctionsPaginator(lambdaClient, &lambda.ListFunctionsInput{})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("error counting Lambda functions in %s: %w", region, err)
		}
		count += len(output.Functions)
	}
	return count, nil
}
