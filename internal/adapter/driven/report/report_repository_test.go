package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsizing/aws-inventory-go/internal/domain/entity"
)

func sampleCounters() entity.ResourceCounters {
	return entity.ResourceCounters{
		EC2Instances:          3,
		RDSInstances:          3,
		RedshiftClusters:      3,
		ClassicLoadBalancers:  3,
		LoadBalancersV2:       3,
		NATGateways:           3,
		ECSFargateClusters:    3,
		FargateRunningTasks:   3,
		FargateActiveServices: 3,
		TaskDefinitions:       3,
		LambdaFunctions:       3,
	}
}

func TestFormatText(t *testing.T) {
	repo := NewReportRepository()

	out := repo.FormatText(sampleCounters())

	assert.Contains(t, out, "AWS resource inventory collection complete.")
	assert.Contains(t, out, "EC2 Instances:             3")
	assert.Contains(t, out, "NAT Gateways:              3")
	assert.Contains(t, out, "Total Resources:           18")
	assert.Contains(t, out, "Additional resources, not included in the total:")
	assert.Contains(t, out, "Lambda Functions:          3")

	// As linhas adicionais vêm depois do total
	assert.Greater(t,
		strings.Index(out, "ECS Fargate Clusters"),
		strings.Index(out, "Total Resources"))
}

func TestFormatJSONValuesAreQuotedStrings(t *testing.T) {
	repo := NewReportRepository()

	out, err := repo.FormatJSON(sampleCounters())
	require.NoError(t, err)

	// Cada valor é o inteiro entre aspas, nunca um número JSON.
	assert.Contains(t, out, `"ec2": "3"`)
	assert.Contains(t, out, `"total": "18"`)
	assert.Contains(t, out, `"_lambda_functions": "3"`)

	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	expected := map[string]string{
		"ec2":                          "3",
		"rds":                          "3",
		"redshift":                     "3",
		"v1_lb":                        "3",
		"v2_lb":                        "3",
		"nat_gw":                       "3",
		"total":                        "18",
		"_ecs_fargate_clusters":        "3",
		"_ecs_fargate_running_tasks":   "3",
		"_ecs_fargate_active_services": "3",
		"_ecs_task_definitions":        "3",
		"_lambda_functions":            "3",
	}
	assert.Equal(t, expected, doc)
}

func TestFormatJSONKeyOrder(t *testing.T) {
	repo := NewReportRepository()

	out, err := repo.FormatJSON(entity.ResourceCounters{})
	require.NoError(t, err)

	keys := []string{
		`"ec2"`, `"rds"`, `"redshift"`, `"v1_lb"`, `"v2_lb"`, `"nat_gw"`, `"total"`,
		`"_ecs_fargate_clusters"`, `"_ecs_fargate_running_tasks"`,
		`"_ecs_fargate_active_services"`, `"_ecs_task_definitions"`, `"_lambda_functions"`,
	}
	last := -1
	for _, key := range keys {
		idx := strings.Index(out, key)
		require.NotEqual(t, -1, idx, "missing key %s", key)
		assert.Greater(t, idx, last, "key %s out of order", key)
		last = idx
	}
}

func TestFormatJSONZeroCounters(t *testing.T) {
	repo := NewReportRepository()

	out, err := repo.FormatJSON(entity.ResourceCounters{})
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "0", doc["total"])
	assert.Len(t, doc, 12)
}
