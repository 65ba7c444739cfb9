package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudsizing/aws-inventory-go/internal/domain/entity"
	"github.com/cloudsizing/aws-inventory-go/internal/domain/repository"
)

// ReportRepositoryImpl implementa o ReportRepository.
type ReportRepositoryImpl struct{}

// NewReportRepository cria uma nova implementação do ReportRepository.
func NewReportRepository() repository.ReportRepository {
	return &ReportRepositoryImpl{}
}

// jsonReport is the wire format consumed by the sizing service. Every value
// is the integer rendered as a quoted string; existing consumers depend on
// that, so the convention must not change. Field order fixes the key order.
type jsonReport struct {
	EC2      string `json:"ec2"`
	RDS      string `json:"rds"`
	Redshift string `json:"redshift"`
	V1LB     string `json:"v1_lb"`
	V2LB     string `json:"v2_lb"`
	NATGW    string `json:"nat_gw"`
	Total    string `json:"total"`

	// Underscore-prefixed keys are informational only and excluded from
	// the billable total.
	ECSFargateClusters       string `json:"_ecs_fargate_clusters"`
	ECSFargateRunningTasks   string `json:"_ecs_fargate_running_tasks"`
	ECSFargateActiveServices string `json:"_ecs_fargate_active_services"`
	ECSTaskDefinitions       string `json:"_ecs_task_definitions"`
	LambdaFunctions          string `json:"_lambda_functions"`
}

// FormatText renders the human-readable report block.
func (r *ReportRepositoryImpl) FormatText(counters entity.ResourceCounters) string {
	var b strings.Builder

	b.WriteString("######################################################################\n")
	b.WriteString("AWS resource inventory collection complete.\n\n")

	fmt.Fprintf(&b, "EC2 Instances:             %d\n", counters.EC2Instances)
	fmt.Fprintf(&b, "RDS Instances:             %d\n", counters.RDSInstances)
	fmt.Fprintf(&b, "Redshift Clusters:         %d\n", counters.RedshiftClusters)
	fmt.Fprintf(&b, "v1 Load Balancers:         %d\n", counters.ClassicLoadBalancers)
	fmt.Fprintf(&b, "v2 Load Balancers:         %d\n", counters.LoadBalancersV2)
	fmt.Fprintf(&b, "NAT Gateways:              %d\n", counters.NATGateways)
	fmt.Fprintf(&b, "====================\n")
	fmt.Fprintf(&b, "Total Resources:           %d\n", counters.BillableTotal())

	b.WriteString("\nAdditional resources, not included in the total:\n")
	fmt.Fprintf(&b, "ECS Fargate Clusters:      %d\n", counters.ECSFargateClusters)
	fmt.Fprintf(&b, "ECS Fargate Running Tasks: %d\n", counters.FargateRunningTasks)
	fmt.Fprintf(&b, "ECS Fargate Active Svcs:   %d\n", counters.FargateActiveServices)
	fmt.Fprintf(&b, "ECS Task Definitions:      %d\n", counters.TaskDefinitions)
	fmt.Fprintf(&b, "Lambda Functions:          %d\n", counters.LambdaFunctions)

	return b.String()
}

// FormatJSON renders the machine-readable report.
func (r *ReportRepositoryImpl) FormatJSON(counters entity.ResourceCounters) (string, error) {
	doc := jsonReport{
		EC2:      strconv.Itoa(counters.EC2Instances),
		RDS:      strconv.Itoa(counters.RDSInstances),
		Redshift: strconv.Itoa(counters.RedshiftClusters),
		V1LB:     strconv.Itoa(counters.ClassicLoadBalancers),
		V2LB:     strconv.Itoa(counters.LoadBalancersV2),
		NATGW:    strconv.Itoa(counters.NATGateways),
		Total:    strconv.Itoa(counters.BillableTotal()),

		ECSFargateClusters:       strconv.Itoa(counters.ECSFargateClusters),
		ECSFargateRunningTasks:   strconv.Itoa(counters.FargateRunningTasks),
		ECSFargateActiveServices: strconv.Itoa(counters.FargateActiveServices),
		ECSTaskDefinitions:       strconv.Itoa(counters.TaskDefinitions),
		LambdaFunctions:          strconv.Itoa(counters.LambdaFunctions),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding JSON report: %w", err)
	}
	return string(data), nil
}
